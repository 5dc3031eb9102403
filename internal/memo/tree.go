// Package memo wires the demo application: a memo-taking shell built
// on top of the replkit engine, persisting through internal/store.
package memo

import (
	"io"

	"github.com/replkit-tools/replkit"
	"github.com/replkit-tools/replkit/internal/store"
)

// App is the shared state handed to every handler through the Context.
type App struct {
	Store   *store.Store
	Out     io.Writer
	Version string

	// cli backs the help and browse commands. Set once by BuildCli.
	cli *replkit.Cli[*App]
}

// BuildCli assembles the full command tree for the memo shell.
func BuildCli(st *store.Store, out io.Writer, version string) (*replkit.Cli[*App], error) {
	app := &App{Store: st, Out: out, Version: version}

	spec := replkit.CliSpec[*App]{
		Name:    "replkit",
		Summary: "a small memo-taking shell",
		Commands: []replkit.CommandSpec[*App]{
			{
				Name:    "memo",
				Summary: "manage stored memos",
				Children: []replkit.CommandSpec[*App]{
					{
						Name:    "add",
						Summary: "store a new memo",
						Value:   replkit.Value(replkit.String),
						Params: []replkit.ParamSpec{
							{Name: "tag", Summary: "label for later filtering", Type: replkit.String, Aliases: []string{"t"}},
							{Name: "pin", Summary: "pin the memo on creation", Type: replkit.Bool, Aliases: []string{"p"}, Flag: true},
						},
						Handler: memoAdd,
					},
					{
						Name:    "list",
						Summary: "list memos, newest first",
						Params: []replkit.ParamSpec{
							{Name: "tag", Summary: "only memos with this tag", Type: replkit.String, Aliases: []string{"t"}},
							{Name: "limit", Summary: "show at most this many", Type: replkit.Int, Aliases: []string{"n"}},
							{Name: "pinned", Summary: "only pinned memos", Type: replkit.Bool, Flag: true},
						},
						Handler: memoList,
					},
					{
						Name:    "show",
						Summary: "show one memo by id prefix",
						Value:   replkit.Value(replkit.String),
						Handler: memoShow,
					},
					{
						Name:    "rm",
						Summary: "delete a memo by id prefix",
						Value:   replkit.Value(replkit.String),
						Handler: memoRm,
					},
					{
						Name:    "pin",
						Summary: "pin or unpin a memo",
						Value:   replkit.Value(replkit.String),
						Params: []replkit.ParamSpec{
							{Name: "off", Summary: "unpin instead", Type: replkit.Bool, Flag: true},
						},
						Handler: memoPin,
					},
				},
			},
			{
				Name:    "config",
				Summary: "read and write shell configuration",
				Children: []replkit.CommandSpec[*App]{
					{
						Name:    "get",
						Summary: "print a config value",
						Value:   replkit.Value(replkit.String),
						Handler: configGet,
					},
					{
						Name:    "set",
						Summary: "set and persist a config value",
						Value:   replkit.Value(replkit.String),
						Params: []replkit.ParamSpec{
							{Name: "value", Summary: "the value to store", Type: replkit.String, Aliases: []string{"v"}},
						},
						Handler: configSet,
					},
				},
			},
			{
				Name:    "help",
				Summary: "show help, optionally for one command",
				Value:   replkit.Value(replkit.String),
				Handler: showHelp,
			},
			{
				Name:    "browse",
				Summary: "browse commands interactively",
				Handler: openBrowser,
			},
			{
				Name:    "version",
				Summary: "print the shell version",
				Handler: showVersion,
			},
			{
				Name:    "quit",
				Summary: "exit the shell",
				Handler: quitShell,
			},
		},
	}

	cli, err := replkit.New(spec, app)
	if err != nil {
		return nil, err
	}
	app.cli = cli
	return cli, nil
}
