package replkit

import (
	"bytes"
	"fmt"
	"strings"
)

// HelpText renders a plain-text overview of the whole tree: every
// runnable command with its summary. Rendering is unstyled; embedders
// that want color apply it themselves.
func (c *Cli[S]) HelpText() string {
	var out bytes.Buffer

	if c.name != "" {
		out.WriteString(c.name)
		if c.summary != "" {
			out.WriteString(" - ")
			out.WriteString(c.summary)
		}
		out.WriteString("\n\n")
	}

	out.WriteString("COMMANDS\n")
	for _, cmd := range c.Commands() {
		writeCommandLines(&out, cmd)
	}

	return out.String()
}

func writeCommandLines[S any](out *bytes.Buffer, cmd *Command[S]) {
	if cmd.Runnable() {
		display := strings.Join(cmd.path, " ")
		fmt.Fprintf(out, "   %-18s %s\n", display, cmd.summary)
	}
	for _, child := range cmd.Children() {
		writeCommandLines(out, child)
	}
}

// CommandHelp renders detailed help for the command at the given path:
// usage line, parameters with aliases and types, and child commands.
// It reports false if the path does not resolve.
func (c *Cli[S]) CommandHelp(path ...string) (string, bool) {
	cmd, ok := c.Lookup(path...)
	if !ok {
		return "", false
	}

	var out bytes.Buffer

	out.WriteString(strings.Join(cmd.path, " "))
	if cmd.summary != "" {
		out.WriteString(" - ")
		out.WriteString(cmd.summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(usageLine(c.name, cmd))
	out.WriteString("\n\n")

	if params := cmd.Params(); len(params) > 0 {
		out.WriteString("PARAMETERS\n")
		for _, p := range params {
			fmt.Fprintf(&out, "   %-24s %s\n", paramSpellings(p), p.summary)
		}
		out.WriteString("\n")
	}

	if children := cmd.Children(); len(children) > 0 {
		out.WriteString("COMMANDS\n")
		for _, child := range children {
			fmt.Fprintf(&out, "   %-18s %s\n", child.name, child.summary)
		}
		out.WriteString("\n")
	}

	return out.String(), true
}

func usageLine[S any](program string, cmd *Command[S]) string {
	parts := []string{}
	if program != "" {
		parts = append(parts, program)
	}
	parts = append(parts, cmd.path...)

	if t, ok := cmd.ValueType(); ok {
		parts = append(parts, fmt.Sprintf("<%s>", t))
	}
	if len(cmd.Params()) > 0 {
		parts = append(parts, "[parameters]")
	}
	if len(cmd.children) > 0 {
		parts = append(parts, "<command>")
	}

	return strings.Join(parts, " ")
}

func paramSpellings(p *Parameter) string {
	spellings := []string{"--" + p.name}
	for _, alias := range p.aliases {
		if len(alias) == 1 {
			spellings = append(spellings, "-"+alias)
		} else {
			spellings = append(spellings, "--"+alias)
		}
	}

	s := strings.Join(spellings, ", ")
	if p.flag {
		return s
	}
	return s + " <" + p.typ.String() + ">"
}
