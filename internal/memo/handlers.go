package memo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/replkit-tools/replkit"
	"github.com/replkit-tools/replkit/internal/browse"
	"github.com/replkit-tools/replkit/internal/config"
	"github.com/replkit-tools/replkit/internal/repl"
	"github.com/replkit-tools/replkit/internal/store"
	"github.com/replkit-tools/replkit/internal/style"
)

func memoAdd(ctx *replkit.Context[*App]) error {
	app := ctx.State()
	unit := ctx.Terminal()

	text, ok := unit.Value()
	if !ok {
		return errors.New(`memo text required, e.g. memo add "buy milk"`)
	}

	var tag string
	if v, ok := unit.Param("tag"); ok {
		tag = v.Str()
	}
	var pinned bool
	if v, ok := unit.Param("pin"); ok {
		pinned = v.Bool()
	}

	m, err := app.Store.Add(text.Str(), tag, pinned)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "%s %s\n", style.Success("added"), shortID(m.ID))
	return nil
}

func memoList(ctx *replkit.Context[*App]) error {
	app := ctx.State()
	unit := ctx.Terminal()

	var f store.ListFilter
	if v, ok := unit.Param("tag"); ok {
		f.Tag = v.Str()
	}
	if v, ok := unit.Param("limit"); ok {
		f.Limit = int(v.Int())
	}
	if v, ok := unit.Param("pinned"); ok {
		f.PinnedOnly = v.Bool()
	}

	memos, err := app.Store.List(f)
	if err != nil {
		return err
	}
	if len(memos) == 0 {
		fmt.Fprintln(app.Out, style.Muted("no memos"))
		return nil
	}

	for _, m := range memos {
		mark := " "
		if m.Pinned {
			mark = style.Info("*")
		}
		tag := ""
		if m.Tag != "" {
			tag = " [" + m.Tag + "]"
		}
		fmt.Fprintf(app.Out, "%s %s%s  %s\n", mark, shortID(m.ID), tag, m.Text)
	}
	return nil
}

func memoShow(ctx *replkit.Context[*App]) error {
	app := ctx.State()

	id, ok := ctx.Terminal().Value()
	if !ok {
		return errors.New("memo id required")
	}

	m, err := app.Store.Get(id.Str())
	if err != nil {
		return err
	}

	fmt.Fprintf(app.Out, "%s %s\n", style.Header("id"), m.ID)
	if m.Tag != "" {
		fmt.Fprintf(app.Out, "%s %s\n", style.Header("tag"), m.Tag)
	}
	fmt.Fprintf(app.Out, "%s %t\n", style.Header("pinned"), m.Pinned)
	fmt.Fprintf(app.Out, "%s %s\n", style.Header("created"), m.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(app.Out, "\n%s\n", m.Text)
	return nil
}

func memoRm(ctx *replkit.Context[*App]) error {
	app := ctx.State()

	id, ok := ctx.Terminal().Value()
	if !ok {
		return errors.New("memo id required")
	}

	if err := app.Store.Delete(id.Str()); err != nil {
		return err
	}
	fmt.Fprintln(app.Out, style.Success("deleted"))
	return nil
}

func memoPin(ctx *replkit.Context[*App]) error {
	app := ctx.State()
	unit := ctx.Terminal()

	id, ok := unit.Value()
	if !ok {
		return errors.New("memo id required")
	}

	pinned := true
	if v, ok := unit.Param("off"); ok && v.Bool() {
		pinned = false
	}

	if err := app.Store.SetPinned(id.Str(), pinned); err != nil {
		return err
	}
	if pinned {
		fmt.Fprintln(app.Out, style.Success("pinned"))
	} else {
		fmt.Fprintln(app.Out, style.Success("unpinned"))
	}
	return nil
}

func configGet(ctx *replkit.Context[*App]) error {
	app := ctx.State()

	key, ok := ctx.Terminal().Value()
	if !ok {
		return errors.New("config key required")
	}

	val := config.Get(key.Str())
	if val == "" {
		fmt.Fprintln(app.Out, style.Muted("(unset)"))
		return nil
	}
	fmt.Fprintln(app.Out, val)
	return nil
}

func configSet(ctx *replkit.Context[*App]) error {
	app := ctx.State()
	unit := ctx.Terminal()

	key, ok := unit.Value()
	if !ok {
		return errors.New("config key required")
	}
	val, ok := unit.Param("value")
	if !ok {
		return errors.New("--value required")
	}

	if err := config.Set(key.Str(), val.Str()); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "%s %s\n", style.Success("set"), key.Str())
	return nil
}

// showHelp prints the tree overview, or detailed help when a command
// path is given. Multi-word paths arrive as one quoted positional,
// e.g. help "memo add".
func showHelp(ctx *replkit.Context[*App]) error {
	app := ctx.State()

	path, ok := ctx.Terminal().Value()
	if !ok {
		fmt.Fprint(app.Out, app.cli.HelpText())
		return nil
	}

	text, found := app.cli.CommandHelp(strings.Fields(path.Str())...)
	if !found {
		return fmt.Errorf("no such command: %s", path.Str())
	}
	fmt.Fprint(app.Out, text)
	return nil
}

func openBrowser(ctx *replkit.Context[*App]) error {
	return browse.Browse(ctx.State().cli)
}

func showVersion(ctx *replkit.Context[*App]) error {
	app := ctx.State()
	fmt.Fprintf(app.Out, "replkit %s\n", app.Version)
	return nil
}

func quitShell(_ *replkit.Context[*App]) error {
	return repl.ErrQuit
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
