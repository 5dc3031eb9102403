package replkit

// Context is the per-call object passed to a handler. It exposes the
// ordered chain of matched commands and the caller's state handle. A
// Context is freshly built for each Exec call and must not be retained
// after the handler returns.
type Context[S any] struct {
	units []*InvocationUnit[S]
	state S
}

// Units returns the invocation chain in match order, root first,
// terminal command last.
func (c *Context[S]) Units() []*InvocationUnit[S] { return c.units }

// Terminal returns the deepest matched unit, whose command owns the
// handler being invoked.
func (c *Context[S]) Terminal() *InvocationUnit[S] {
	return c.units[len(c.units)-1]
}

// State returns the caller-supplied state handle. The engine never
// inspects it.
func (c *Context[S]) State() S { return c.state }

// InvocationUnit is one matched command within a parsed chain, with
// its optional positional value and bound parameters.
type InvocationUnit[S any] struct {
	cmd    *Command[S]
	value  *ArgValue
	params map[string]binding
}

type binding struct {
	param *Parameter
	value ArgValue
}

// Name returns the matched command's name.
func (u *InvocationUnit[S]) Name() string { return u.cmd.name }

// Command returns the matched command node.
func (u *InvocationUnit[S]) Command() *Command[S] { return u.cmd }

// Value returns the bound positional value, if one was consumed.
func (u *InvocationUnit[S]) Value() (ArgValue, bool) {
	if u.value == nil {
		return ArgValue{}, false
	}
	return *u.value, true
}

// Param returns the value bound to the given canonical parameter name.
// Values bound through an alias are reported under the canonical name.
func (u *InvocationUnit[S]) Param(name string) (ArgValue, bool) {
	b, ok := u.params[name]
	if !ok {
		return ArgValue{}, false
	}
	return b.value, true
}

// Params returns a copy of all bound parameters keyed by canonical
// name.
func (u *InvocationUnit[S]) Params() map[string]ArgValue {
	out := make(map[string]ArgValue, len(u.params))
	for name, b := range u.params {
		out[name] = b.value
	}
	return out
}
