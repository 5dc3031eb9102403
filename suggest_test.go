package replkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"list", "list", 0},
		{"List", "list", 0}, // case-insensitive
		{"lst", "list", 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestSimilarNames(t *testing.T) {
	names := []string{"list", "add", "show", "remove", "version"}

	got := similarNames("lst", names, 3)
	require.Equal(t, []string{"list"}, got)

	// Exact matches are never suggested; distance must be > 0.
	got = similarNames("list", names, 3)
	require.NotContains(t, got, "list")

	// Nothing within distance.
	require.Empty(t, similarNames("xxxxxxxxxx", names, 3))
}

func TestSimilarNamesOrderingAndLimit(t *testing.T) {
	names := []string{"bat", "cat", "can", "car", "dog"}

	got := similarNames("cab", names, 2)
	require.Len(t, got, 2)
	// All candidates are at distance 1; ties break alphabetically.
	require.Equal(t, []string{"can", "car"}, got)
}
