package replkit

// HandlerFunc is the callback attached to a command. It receives the
// per-call Context and may fail with an opaque error, which Exec
// surfaces wrapped in an ExecError. All effects on shared data should
// flow through the state handle exposed by the Context.
type HandlerFunc[S any] func(*Context[S]) error

// CliSpec declares a full command tree. It is consumed once by New;
// the resulting Cli is immutable.
type CliSpec[S any] struct {
	Name     string // program name, used in help output
	Summary  string
	Commands []CommandSpec[S]
}

// CommandSpec declares one command: an optional positional value type,
// named parameters, child commands, and at most one handler.
type CommandSpec[S any] struct {
	Name     string
	Summary  string
	Value    *ArgType // declared positional type, nil for none
	Params   []ParamSpec
	Children []CommandSpec[S]
	Handler  HandlerFunc[S]
}

// ParamSpec declares a named parameter. Aliases resolve identically to
// the canonical name and must not collide with any other spelling on
// the same command.
//
// Flag marks a presence flag: the bare parameter binds true and
// consumes no value token. Flag is only valid on Bool parameters; a
// Bool parameter without Flag requires an explicit value token.
type ParamSpec struct {
	Name    string
	Summary string
	Type    ArgType
	Aliases []string
	Flag    bool
}

// Value is a convenience for declaring a positional type in a
// CommandSpec literal.
func Value(t ArgType) *ArgType { return &t }
