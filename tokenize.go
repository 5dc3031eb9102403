package replkit

import (
	"unicode"
	"unicode/utf8"
)

// Token is a single word extracted from an input line. Pos is the byte
// offset of the token's first character in the original line and is
// carried through to parse errors so embedders can point at the
// offending input. Quoted marks tokens that came from a quoted word;
// where a positional value and a child command name compete for the
// same token, quoting forces the positional.
type Token struct {
	Text   string
	Pos    int
	Quoted bool
}

// Tokenize splits a raw input line into ordered word tokens.
//
// Words are separated by runs of whitespace. A word that starts with a
// single or double quote extends to the matching quote and may contain
// whitespace; the quotes themselves are not part of the token. An
// unterminated quote extends to the end of the line. An empty or
// all-whitespace line yields no tokens.
func Tokenize(line string) []Token {
	var tokens []Token

	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		if r == '\'' || r == '"' {
			start := i + size
			end := indexRune(line, start, r)
			if end < 0 {
				tokens = append(tokens, Token{Text: line[start:], Pos: start, Quoted: true})
				return tokens
			}
			tokens = append(tokens, Token{Text: line[start:end], Pos: start, Quoted: true})
			i = end + size
			continue
		}

		start := i
		for i < len(line) {
			r, size := utf8.DecodeRuneInString(line[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, Token{Text: line[start:i], Pos: start})
	}

	return tokens
}

// indexRune returns the byte index of the first occurrence of r in line
// at or after from, or -1 if absent.
func indexRune(line string, from int, r rune) int {
	for i := from; i < len(line); {
		c, size := utf8.DecodeRuneInString(line[i:])
		if c == r {
			return i
		}
		i += size
	}
	return -1
}
