// Package browse is a small bubbletea TUI that lists every runnable
// command of a Cli next to its detailed help text.
package browse

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/replkit-tools/replkit"
)

// Browse opens the command browser for the given Cli. It requires an
// interactive terminal on both stdin and stdout.
func Browse[S any](cli *replkit.Cli[S]) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("command browser requires an interactive terminal")
	}

	entries := buildEntries(cli)
	if len(entries) == 0 {
		return errors.New("no commands to browse")
	}

	m := model{entries: entries, keys: defaultKeyMap()}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type entry struct {
	name string // space-joined path
	help string
}

func buildEntries[S any](cli *replkit.Cli[S]) []entry {
	var entries []entry
	for _, cmd := range cli.Commands() {
		collectEntries(cli, cmd, &entries)
	}
	return entries
}

func collectEntries[S any](cli *replkit.Cli[S], cmd *replkit.Command[S], out *[]entry) {
	if cmd.Runnable() {
		path := cmd.Path()
		help, _ := cli.CommandHelp(path...)
		*out = append(*out, entry{
			name: strings.Join(path, " "),
			help: help,
		})
	}
	for _, child := range cmd.Children() {
		collectEntries(cli, child, out)
	}
}

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous command"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	entries []entry
	keys    keyMap
	cursor  int
	width   int
	height  int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

var (
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			PaddingRight(1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	detailStyle   = lipgloss.NewStyle().PaddingLeft(2)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	sidebarWidth := m.width / 3
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}

	var sidebar strings.Builder
	for i, e := range m.entries {
		line := e.name
		if len(line) > sidebarWidth-2 {
			line = line[:sidebarWidth-2]
		}
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		sidebar.WriteString(line)
		sidebar.WriteString("\n")
	}

	detail := detailStyle.Width(m.width - sidebarWidth - 4).
		Render(m.entries[m.cursor].help)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarStyle.Width(sidebarWidth).Render(sidebar.String()),
		detail,
	)

	footer := footerStyle.Render("up/down: select   q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
