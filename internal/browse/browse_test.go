package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/replkit-tools/replkit"
)

func testCli(t *testing.T) *replkit.Cli[int] {
	t.Helper()

	noop := func(_ *replkit.Context[int]) error { return nil }
	cli, err := replkit.New(replkit.CliSpec[int]{
		Name: "demo",
		Commands: []replkit.CommandSpec[int]{
			{Name: "top", Summary: "a top-level command", Handler: noop},
			{Name: "group", Summary: "not runnable itself", Children: []replkit.CommandSpec[int]{
				{Name: "child", Summary: "nested command", Handler: noop},
			}},
		},
	}, 0)
	require.NoError(t, err)
	return cli
}

func TestBuildEntriesRunnableOnly(t *testing.T) {
	entries := buildEntries(testCli(t))

	require.Len(t, entries, 2)
	require.Equal(t, "group child", entries[0].name)
	require.Equal(t, "top", entries[1].name)
	require.Contains(t, entries[0].help, "USAGE")
}

func TestModelNavigation(t *testing.T) {
	m := model{entries: buildEntries(testCli(t)), keys: defaultKeyMap()}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	require.Equal(t, 1, m.cursor)

	// Cursor stops at the last entry.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	require.Equal(t, 1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, 0, m.cursor)
}

func TestModelView(t *testing.T) {
	m := model{entries: buildEntries(testCli(t)), keys: defaultKeyMap()}

	require.Equal(t, "loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(model)
	out := m.View()
	require.Contains(t, out, "group child")
	require.Contains(t, out, "top")
	require.Contains(t, out, "q: quit")
}
