package replkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTexts(tokens []Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "simple words",
			line: "one two three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "runs of whitespace",
			line: "  one \t two\t\tthree  ",
			want: []string{"one", "two", "three"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
		{
			name: "all whitespace",
			line: " \t \t ",
			want: nil,
		},
		{
			name: "double quoted word",
			line: `one "two and a half" three`,
			want: []string{"one", "two and a half", "three"},
		},
		{
			name: "single quoted word",
			line: "one 'two; half' three",
			want: []string{"one", "two; half", "three"},
		},
		{
			name: "quoted word at end",
			line: `one two "three"`,
			want: []string{"one", "two", "three"},
		},
		{
			name: "unterminated quote runs to end of line",
			line: `one two "three four`,
			want: []string{"one", "two", "three four"},
		},
		{
			name: "empty quoted token",
			line: `cmd ""`,
			want: []string{"cmd", ""},
		},
		{
			name: "quote inside a word is literal",
			line: `it's fine`,
			want: []string{"it's", "fine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.line)
			require.Equal(t, tt.want, tokenTexts(got))
		})
	}
}

func TestTokenizeQuotedFlag(t *testing.T) {
	tokens := Tokenize(`one "two" 'three' "four`)
	require.Len(t, tokens, 4)
	require.False(t, tokens[0].Quoted)
	require.True(t, tokens[1].Quoted)
	require.True(t, tokens[2].Quoted)
	require.True(t, tokens[3].Quoted, "unterminated quote still marks the token")
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize(`one "two" three`)
	require.Len(t, tokens, 3)
	require.Equal(t, 0, tokens[0].Pos)
	require.Equal(t, 5, tokens[1].Pos, "quoted token position is inside the quotes")
	require.Equal(t, 10, tokens[2].Pos)

	for _, tok := range Tokenize("alpha  beta\tgamma") {
		require.Equal(t, tok.Text, "alpha  beta\tgamma"[tok.Pos:tok.Pos+len(tok.Text)])
	}
}
