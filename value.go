package replkit

import (
	"errors"
	"strconv"
)

// ArgType is the declared type of a positional value or parameter.
type ArgType int

const (
	Bool ArgType = iota
	Int
	Float
	String
)

func (t ArgType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// ArgValue is a typed value produced by coercing a token against a
// declared ArgType. Exactly one of the accessors is meaningful,
// according to Type.
type ArgValue struct {
	typ ArgType
	b   bool
	i   int64
	f   float64
	s   string
}

// Type reports which variant the value carries.
func (v ArgValue) Type() ArgType { return v.typ }

// Bool returns the boolean payload. Only meaningful when Type is Bool.
func (v ArgValue) Bool() bool { return v.b }

// Int returns the integer payload. Only meaningful when Type is Int.
func (v ArgValue) Int() int64 { return v.i }

// Float returns the float payload. Only meaningful when Type is Float.
func (v ArgValue) Float() float64 { return v.f }

// Str returns the string payload. Only meaningful when Type is String.
func (v ArgValue) Str() string { return v.s }

func boolValue(b bool) ArgValue    { return ArgValue{typ: Bool, b: b} }
func intValue(i int64) ArgValue    { return ArgValue{typ: Int, i: i} }
func floatValue(f float64) ArgValue { return ArgValue{typ: Float, f: f} }
func stringValue(s string) ArgValue { return ArgValue{typ: String, s: s} }

// coerce converts a token into an ArgValue of the declared type.
//
// Bool accepts the exact lowercase literals "true", "yes", "1", "on"
// and "false", "no", "0", "off". Int is a signed 64-bit integer and
// fails on overflow. Float is a 64-bit float; out-of-range numeric
// text saturates to +Inf or -Inf. String takes the token verbatim.
// Any failure is a TypeMismatch naming the expected type and the
// offending token.
func coerce(t ArgType, tok Token) (ArgValue, *ParseError) {
	switch t {
	case Bool:
		switch tok.Text {
		case "true", "yes", "1", "on":
			return boolValue(true), nil
		case "false", "no", "0", "off":
			return boolValue(false), nil
		}
	case Int:
		if i, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
			return intValue(i), nil
		}
	case Float:
		// ErrRange still yields a usable ±Inf result.
		if f, err := strconv.ParseFloat(tok.Text, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return floatValue(f), nil
		}
	case String:
		return stringValue(tok.Text), nil
	}

	return ArgValue{}, &ParseError{
		Kind:     TypeMismatch,
		Token:    tok.Text,
		Pos:      tok.Pos,
		Expected: t,
	}
}
