// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"

	"github.com/aibor/vmlaunch/internal/launch"
	"golang.org/x/term"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// Reporter renders operator-facing output.
type Reporter interface {
	// Error reports an error as a single labeled line.
	Error(err error)
	// Warn reports a non-fatal issue as a single labeled line.
	Warn(msg string)
	// Banner reports the launch summary and connection instructions.
	Banner(l *launch.Launch, sshUser string)
}

// TerminalReporter is a [Reporter] that writes plain text. Labels are
// colored if the output is a terminal.
type TerminalReporter struct {
	command  string
	stdout   io.Writer
	stderr   io.Writer
	colorOut bool
	colorErr bool
}

var _ Reporter = (*TerminalReporter)(nil)

// NewTerminalReporter creates a new [TerminalReporter] that labels lines
// with the given command name. Colors are disabled if the [NoColorEnvVar] is
// set.
func NewTerminalReporter(
	command string,
	stdout, stderr io.Writer,
	getenv func(string) string,
) *TerminalReporter {
	noColor := getenv(NoColorEnvVar) != ""

	return &TerminalReporter{
		command:  command,
		stdout:   stdout,
		stderr:   stderr,
		colorOut: !noColor && isTerminal(stdout),
		colorErr: !noColor && isTerminal(stderr),
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec
}

func colorize(enabled bool, color, text string) string {
	if !enabled {
		return text
	}

	return color + text + ansiReset
}

func (r *TerminalReporter) label(kind, color string) string {
	return colorize(r.colorErr, color, kind) + " [" + r.command + "]: "
}

// Error implements [Reporter].
func (r *TerminalReporter) Error(err error) {
	fmt.Fprintln(r.stderr, r.label("Error", ansiRed)+err.Error())
}

// Warn implements [Reporter].
func (r *TerminalReporter) Warn(msg string) {
	fmt.Fprintln(r.stderr, r.label("Warning", ansiYellow)+msg)
}

// Banner implements [Reporter].
func (r *TerminalReporter) Banner(l *launch.Launch, sshUser string) {
	heading := func(text string) string {
		return colorize(r.colorOut, ansiBold, text)
	}

	fmt.Fprintln(r.stdout, heading("Virtual machine"))

	for _, field := range l.Summary() {
		fmt.Fprintf(r.stdout, "  %-14s %s\n", field.Label+":", field.Value)
	}

	fmt.Fprintln(r.stdout)
	fmt.Fprintln(r.stdout, heading("Connect with"))
	fmt.Fprintln(r.stdout, "  "+l.SSHHint(sshUser))
	fmt.Fprintln(r.stdout)
	fmt.Fprintln(r.stdout, heading("Mount the shared directory in the guest with"))
	fmt.Fprintln(r.stdout, "  "+l.MountHint())
	fmt.Fprintln(r.stdout)
}
