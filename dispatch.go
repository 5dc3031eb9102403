package replkit

import "strings"

const maxSuggestions = 3

// Exec parses a raw input line against the command tree and invokes
// the terminal command's handler with a freshly built Context.
//
// An empty or all-whitespace line is a no-op and returns nil. A failed
// parse returns a *ParseError and invokes no handler. A handler
// failure is returned wrapped in a *ExecError. Exec performs no I/O
// and never mutates the tree.
func (c *Cli[S]) Exec(line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	ctx, perr := c.parse(tokens)
	if perr != nil {
		return perr
	}

	terminal := ctx.Terminal()
	if err := terminal.cmd.handler(ctx); err != nil {
		return &ExecError{Path: strings.Join(terminal.cmd.path, " "), Err: err}
	}
	return nil
}

// parse walks the token sequence against the tree and produces the
// ordered invocation chain. The grammar per matched command is:
//
//	name (positional)? (parameter value?)* (child ...)?
//
// The positional value may only be the token immediately after the
// command name, and a bare token matching a child command's name is
// matched as the child, never consumed as a positional value. Quoting
// the token forces positional binding.
func (c *Cli[S]) parse(tokens []Token) (*Context[S], *ParseError) {
	ctx := &Context[S]{state: c.state}
	commands := c.commands
	parent := ""
	i := 0

	for {
		tok := tokens[i]
		cmd, ok := commands[tok.Text]
		if !ok {
			kind := CommandNotFound
			if parent != "" {
				kind = ChildCommandNotFound
			}
			return nil, &ParseError{
				Kind:       kind,
				Token:      tok.Text,
				Pos:        tok.Pos,
				Command:    parent,
				Candidates: similarNames(tok.Text, commandNames(commands), maxSuggestions),
			}
		}

		unit := &InvocationUnit[S]{cmd: cmd, params: make(map[string]binding)}
		ctx.units = append(ctx.units, unit)
		i++

		if cmd.value != nil && i < len(tokens) && !isParamToken(tokens[i].Text) {
			if _, isChild := cmd.children[tokens[i].Text]; !isChild || tokens[i].Quoted {
				v, perr := coerce(*cmd.value, tokens[i])
				if perr != nil {
					return nil, perr
				}
				unit.value = &v
				i++
			}
		}

		for i < len(tokens) && isParamToken(tokens[i].Text) {
			tok := tokens[i]
			p, ok := cmd.params[trimParamPrefix(tok.Text)]
			if !ok {
				return nil, &ParseError{Kind: UnknownParameter, Token: tok.Text, Pos: tok.Pos}
			}

			if p.flag {
				unit.params[p.name] = binding{param: p, value: boolValue(true)}
				i++
				continue
			}

			if i+1 >= len(tokens) {
				return nil, &ParseError{Kind: MissingValue, Param: p.name, Token: tok.Text, Pos: tok.Pos}
			}
			v, perr := coerce(p.typ, tokens[i+1])
			if perr != nil {
				return nil, perr
			}
			// Rebinding the same parameter is allowed; the last
			// occurrence wins.
			unit.params[p.name] = binding{param: p, value: v}
			i += 2
		}

		if i >= len(tokens) {
			if cmd.handler == nil {
				return nil, &ParseError{Kind: NoHandler, Command: strings.Join(cmd.path, " ")}
			}
			return ctx, nil
		}

		commands = cmd.children
		parent = strings.Join(cmd.path, " ")
	}
}

func isParamToken(text string) bool {
	return strings.HasPrefix(text, "-")
}

func trimParamPrefix(text string) string {
	if strings.HasPrefix(text, "--") {
		return text[2:]
	}
	return text[1:]
}

func commandNames[S any](m map[string]*Command[S]) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
