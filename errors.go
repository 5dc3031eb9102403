package replkit

import (
	"fmt"
	"strings"
)

// BuildErrorKind classifies structural errors detected while building a
// command tree. Build errors are fail-fast: no Cli is produced.
type BuildErrorKind int

const (
	DuplicateCommand BuildErrorKind = iota
	DuplicateParameter
	DuplicateAlias
	BadFlagType
	EmptyName
	EmptyCommand
)

// BuildError reports a structural problem in a CliSpec.
type BuildError struct {
	Kind    BuildErrorKind
	Command string // space-joined path of the owning command, "" at top level
	Name    string // offending command, parameter, or alias name
}

func (e *BuildError) Error() string {
	owner := "top level"
	if e.Command != "" {
		owner = fmt.Sprintf("command %q", e.Command)
	}

	switch e.Kind {
	case DuplicateCommand:
		return fmt.Sprintf("duplicate command %q at %s", e.Name, owner)
	case DuplicateParameter:
		return fmt.Sprintf("duplicate parameter %q on %s", e.Name, owner)
	case DuplicateAlias:
		return fmt.Sprintf("alias %q collides with another parameter on %s", e.Name, owner)
	case BadFlagType:
		return fmt.Sprintf("parameter %q on %s: Flag requires type bool", e.Name, owner)
	case EmptyName:
		return fmt.Sprintf("empty name at %s", owner)
	case EmptyCommand:
		return fmt.Sprintf("command %q has no handler, children, or value", e.Name)
	default:
		return fmt.Sprintf("invalid spec at %s", owner)
	}
}

// ParseErrorKind classifies failures while parsing a single input line.
// A parse error aborts only the current call; no handler runs and
// neither the registry nor caller state is touched.
type ParseErrorKind int

const (
	CommandNotFound ParseErrorKind = iota
	ChildCommandNotFound
	UnknownParameter
	MissingValue
	TypeMismatch
	NoHandler
)

// ParseError is the typed result of a failed parse.
type ParseError struct {
	Kind       ParseErrorKind
	Token      string   // offending token text, if any
	Pos        int      // byte offset of the token in the input line
	Expected   ArgType  // expected type, TypeMismatch only
	Param      string   // canonical parameter name, MissingValue only
	Command    string   // space-joined command path, NoHandler and ChildCommandNotFound
	Candidates []string // similar command names, *CommandNotFound only
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case CommandNotFound:
		return e.withCandidates(fmt.Sprintf("unknown command %q", e.Token))
	case ChildCommandNotFound:
		return e.withCandidates(fmt.Sprintf("unknown command %q under %q", e.Token, e.Command))
	case UnknownParameter:
		return fmt.Sprintf("unknown parameter %q", e.Token)
	case MissingValue:
		return fmt.Sprintf("parameter %q requires a value", e.Param)
	case TypeMismatch:
		return fmt.Sprintf("expected %s, got %q", e.Expected, e.Token)
	case NoHandler:
		return fmt.Sprintf("incomplete command %q", e.Command)
	default:
		return "parse error"
	}
}

func (e *ParseError) withCandidates(msg string) string {
	if len(e.Candidates) == 0 {
		return msg
	}
	return msg + " (did you mean: " + strings.Join(e.Candidates, ", ") + "?)"
}

// ExecError wraps a failure raised inside a handler. The engine never
// swallows handler errors; they surface to the caller of Exec with the
// terminal command path attached.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }
