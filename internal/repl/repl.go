package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/replkit-tools/replkit"
	"github.com/replkit-tools/replkit/internal/style"
)

// ErrQuit is the sentinel a handler returns to end the session
// cleanly. Run matches it through the ExecError wrapper.
var ErrQuit = errors.New("quit")

// Run drives the read-eval loop against a built Cli until EOF,
// interrupt, or a handler returning ErrQuit. Lines are processed one
// at a time; the engine requires no further serialization.
func Run[S any](cli *replkit.Cli[S], prompt string) error {
	ed := NewLineEditor()
	defer ed.Close()

	for {
		line, err := ed.GetLine(prompt)
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := cli.Exec(line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			logrus.WithError(err).Debug("repl: line failed")
			fmt.Fprintln(os.Stderr, FormatError(err))
		}
	}
}

// FormatError renders an Exec failure for display, styling parse
// errors and surfacing "did you mean" candidates.
func FormatError(err error) string {
	var perr *replkit.ParseError
	if errors.As(err, &perr) {
		return style.Error(perr.Error())
	}

	var xerr *replkit.ExecError
	if errors.As(err, &xerr) {
		return style.Error(xerr.Path+": ") + xerr.Err.Error()
	}

	return style.Error(err.Error())
}
