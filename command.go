package replkit

import (
	"sort"
	"strings"
)

// Cli is the root of a built command tree plus the caller-supplied
// state threaded into every dispatch. It is immutable after New and
// safe to read from multiple goroutines; the embedder is responsible
// for serializing Exec calls if its state requires it.
type Cli[S any] struct {
	name     string
	summary  string
	commands map[string]*Command[S]
	state    S
}

// Command is one node of a built tree.
type Command[S any] struct {
	name     string
	summary  string
	path     []string
	value    *ArgType
	params   map[string]*Parameter // keyed by every valid spelling
	children map[string]*Command[S]
	handler  HandlerFunc[S]
}

// Parameter is a built named parameter. One Parameter identity backs
// every spelling (canonical name plus aliases).
type Parameter struct {
	name    string
	summary string
	typ     ArgType
	aliases []string
	flag    bool
}

func (p *Parameter) Name() string      { return p.name }
func (p *Parameter) Summary() string   { return p.summary }
func (p *Parameter) Type() ArgType     { return p.typ }
func (p *Parameter) Aliases() []string { return append([]string(nil), p.aliases...) }
func (p *Parameter) Flag() bool        { return p.flag }

// New builds an immutable Cli from a spec. It fails fast with a
// *BuildError on any structural collision: duplicate sibling command
// names, duplicate parameter names, an alias colliding with another
// parameter's name or alias on the same command, Flag on a non-Bool
// parameter, or a command declaring nothing at all.
func New[S any](spec CliSpec[S], state S) (*Cli[S], error) {
	commands, err := buildCommands(spec.Commands, nil)
	if err != nil {
		return nil, err
	}

	return &Cli[S]{
		name:     spec.Name,
		summary:  spec.Summary,
		commands: commands,
		state:    state,
	}, nil
}

func buildCommands[S any](specs []CommandSpec[S], path []string) (map[string]*Command[S], error) {
	commands := make(map[string]*Command[S], len(specs))

	for _, cs := range specs {
		if cs.Name == "" {
			return nil, &BuildError{Kind: EmptyName, Command: strings.Join(path, " ")}
		}
		if _, ok := commands[cs.Name]; ok {
			return nil, &BuildError{Kind: DuplicateCommand, Command: strings.Join(path, " "), Name: cs.Name}
		}

		cmd, err := buildCommand(cs, append(append([]string(nil), path...), cs.Name))
		if err != nil {
			return nil, err
		}
		commands[cs.Name] = cmd
	}

	return commands, nil
}

func buildCommand[S any](spec CommandSpec[S], path []string) (*Command[S], error) {
	if spec.Handler == nil && len(spec.Children) == 0 && spec.Value == nil {
		return nil, &BuildError{Kind: EmptyCommand, Name: strings.Join(path, " ")}
	}

	params, err := buildParams(spec.Params, path)
	if err != nil {
		return nil, err
	}

	children, err := buildCommands(spec.Children, path)
	if err != nil {
		return nil, err
	}

	var value *ArgType
	if spec.Value != nil {
		t := *spec.Value
		value = &t
	}

	return &Command[S]{
		name:     spec.Name,
		summary:  spec.Summary,
		path:     path,
		value:    value,
		params:   params,
		children: children,
		handler:  spec.Handler,
	}, nil
}

func buildParams(specs []ParamSpec, path []string) (map[string]*Parameter, error) {
	owner := strings.Join(path, " ")
	params := make(map[string]*Parameter, len(specs))

	for _, ps := range specs {
		if ps.Name == "" {
			return nil, &BuildError{Kind: EmptyName, Command: owner}
		}
		if ps.Flag && ps.Type != Bool {
			return nil, &BuildError{Kind: BadFlagType, Command: owner, Name: ps.Name}
		}

		p := &Parameter{
			name:    ps.Name,
			summary: ps.Summary,
			typ:     ps.Type,
			aliases: append([]string(nil), ps.Aliases...),
			flag:    ps.Flag,
		}

		if _, ok := params[ps.Name]; ok {
			return nil, &BuildError{Kind: DuplicateParameter, Command: owner, Name: ps.Name}
		}
		params[ps.Name] = p

		for _, alias := range ps.Aliases {
			if alias == "" {
				return nil, &BuildError{Kind: EmptyName, Command: owner}
			}
			if _, ok := params[alias]; ok {
				return nil, &BuildError{Kind: DuplicateAlias, Command: owner, Name: alias}
			}
			params[alias] = p
		}
	}

	return params, nil
}

// Name returns the program name declared in the spec.
func (c *Cli[S]) Name() string { return c.name }

// Summary returns the program summary declared in the spec.
func (c *Cli[S]) Summary() string { return c.summary }

// State returns the caller-supplied state handle.
func (c *Cli[S]) State() S { return c.state }

// Commands returns the top-level commands sorted by name.
func (c *Cli[S]) Commands() []*Command[S] {
	return sortedCommands(c.commands)
}

// Lookup resolves a command by its path from the root, for help and
// introspection. It reports false if any segment is unknown.
func (c *Cli[S]) Lookup(path ...string) (*Command[S], bool) {
	if len(path) == 0 {
		return nil, false
	}

	cmds := c.commands
	var cur *Command[S]
	for _, name := range path {
		next, ok := cmds[name]
		if !ok {
			return nil, false
		}
		cur = next
		cmds = next.children
	}
	return cur, true
}

func (cmd *Command[S]) Name() string    { return cmd.name }
func (cmd *Command[S]) Summary() string { return cmd.summary }

// Path returns the command's full path from the root.
func (cmd *Command[S]) Path() []string {
	return append([]string(nil), cmd.path...)
}

// ValueType returns the declared positional type, if any.
func (cmd *Command[S]) ValueType() (ArgType, bool) {
	if cmd.value == nil {
		return 0, false
	}
	return *cmd.value, true
}

// Params returns the command's parameters sorted by canonical name,
// one entry per Parameter identity regardless of alias count.
func (cmd *Command[S]) Params() []*Parameter {
	seen := make(map[*Parameter]bool, len(cmd.params))
	out := make([]*Parameter, 0, len(cmd.params))
	for _, p := range cmd.params {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Children returns the command's child commands sorted by name.
func (cmd *Command[S]) Children() []*Command[S] {
	return sortedCommands(cmd.children)
}

// Runnable reports whether the command owns a handler.
func (cmd *Command[S]) Runnable() bool { return cmd.handler != nil }

func sortedCommands[S any](m map[string]*Command[S]) []*Command[S] {
	out := make([]*Command[S], 0, len(m))
	for _, cmd := range m {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
