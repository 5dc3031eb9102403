// Command replkit is the memo-taking demo shell. With no arguments it
// starts an interactive session; with arguments it executes them as a
// single command line and exits.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/replkit-tools/replkit/internal/config"
	"github.com/replkit-tools/replkit/internal/memo"
	"github.com/replkit-tools/replkit/internal/repl"
	"github.com/replkit-tools/replkit/internal/store"
	"github.com/replkit-tools/replkit/internal/style"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	config.Load()

	if err := config.EnsureDir(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	setupLogging()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	style.Init(interactive && config.ColorEnabled())

	st, err := store.New(config.DBPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, style.Error("opening store: ")+err.Error())
		return 1
	}
	defer st.Close()

	cli, err := memo.BuildCli(st, os.Stdout, version)
	if err != nil {
		fmt.Fprintln(os.Stderr, style.Error("building commands: ")+err.Error())
		return 1
	}

	if args := os.Args[1:]; len(args) > 0 {
		if err := cli.Exec(joinArgs(args)); err != nil {
			fmt.Fprintln(os.Stderr, repl.FormatError(err))
			return 1
		}
		return 0
	}

	if err := repl.Run(cli, config.Prompt()); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		return 1
	}
	return 0
}

// joinArgs rebuilds a command line from argv, re-quoting arguments the
// shell already split so multi-word values survive tokenization.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t") {
			quoted[i] = `"` + a + `"`
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}

func setupLogging() {
	level, err := logrus.ParseLevel(config.LogLevel())
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	f, err := os.OpenFile(config.LogFile(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return
	}
	logrus.SetOutput(f)
}
