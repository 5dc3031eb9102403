package replkit

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerceBool(t *testing.T) {
	for _, lit := range []string{"true", "yes", "1", "on"} {
		v, perr := coerce(Bool, Token{Text: lit})
		require.Nil(t, perr, lit)
		require.Equal(t, Bool, v.Type())
		require.True(t, v.Bool(), lit)
	}

	for _, lit := range []string{"false", "no", "0", "off"} {
		v, perr := coerce(Bool, Token{Text: lit})
		require.Nil(t, perr, lit)
		require.False(t, v.Bool(), lit)
	}
}

func TestCoerceBoolRejectsOtherSpellings(t *testing.T) {
	// Literals are exact and lowercase.
	for _, lit := range []string{"True", "FALSE", "y", "not_a_bool", ""} {
		_, perr := coerce(Bool, Token{Text: lit, Pos: 4})
		require.NotNil(t, perr, lit)
		require.Equal(t, TypeMismatch, perr.Kind)
		require.Equal(t, Bool, perr.Expected)
		require.Equal(t, lit, perr.Token)
		require.Equal(t, 4, perr.Pos)
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		text string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-17", -17},
		{strconv.FormatInt(math.MaxInt64, 10), math.MaxInt64},
		{strconv.FormatInt(math.MinInt64, 10), math.MinInt64},
	}

	for _, tt := range tests {
		v, perr := coerce(Int, Token{Text: tt.text})
		require.Nil(t, perr, tt.text)
		require.Equal(t, Int, v.Type())
		require.Equal(t, tt.want, v.Int())
	}
}

func TestCoerceIntFailures(t *testing.T) {
	for _, text := range []string{
		"notanumber",
		"4.2",
		"",
		"99999999999999999999999999999999", // overflow
	} {
		_, perr := coerce(Int, Token{Text: text})
		require.NotNil(t, perr, text)
		require.Equal(t, TypeMismatch, perr.Kind)
		require.Equal(t, Int, perr.Expected)
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"4.2", 4.2},
		{"-0.5", -0.5},
		{"1e3", 1000},
		{"42", 42},
	}

	for _, tt := range tests {
		v, perr := coerce(Float, Token{Text: tt.text})
		require.Nil(t, perr, tt.text)
		require.Equal(t, Float, v.Type())
		require.InDelta(t, tt.want, v.Float(), 1e-9)
	}
}

func TestCoerceFloatOverflowIsInf(t *testing.T) {
	v, perr := coerce(Float, Token{Text: "1e999"})
	require.Nil(t, perr)
	require.True(t, math.IsInf(v.Float(), 1))

	v, perr = coerce(Float, Token{Text: "-1e999"})
	require.Nil(t, perr)
	require.True(t, math.IsInf(v.Float(), -1))
}

func TestCoerceFloatFailure(t *testing.T) {
	_, perr := coerce(Float, Token{Text: "not_float"})
	require.NotNil(t, perr)
	require.Equal(t, TypeMismatch, perr.Kind)
	require.Equal(t, Float, perr.Expected)
}

func TestCoerceStringIsVerbatim(t *testing.T) {
	for _, text := range []string{"bla", "", "42", "--looks-like-a-param"} {
		v, perr := coerce(String, Token{Text: text})
		require.Nil(t, perr)
		require.Equal(t, String, v.Type())
		require.Equal(t, text, v.Str())
	}
}

func TestArgTypeString(t *testing.T) {
	require.Equal(t, "bool", Bool.String())
	require.Equal(t, "int", Int.String())
	require.Equal(t, "float", Float.String())
	require.Equal(t, "string", String.String())
}
