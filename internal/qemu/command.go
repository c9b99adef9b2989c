// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// Command is a single QEMU command that can be run.
type Command struct {
	// Path to the QEMU binary.
	Path string

	// Arguments as passed to the binary, without the binary itself.
	Args []string
}

// NewCommand creates a new [Command] for the binary at the given path with
// the given arguments.
//
// It returns an error if any name uniqueness constraints of any [Argument] is
// violated.
func NewCommand(path string, args []Argument) (*Command, error) {
	argStrings, err := BuildArgumentStrings(args)
	if err != nil {
		return nil, fmt.Errorf("build argument strings: %w", err)
	}

	cmd := &Command{
		Path: path,
		Args: argStrings,
	}

	return cmd, nil
}

// String returns a human-readable description of the command. Arguments with
// white space are quoted.
func (c *Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Path)

	for _, arg := range c.Args {
		if strings.ContainsAny(arg, " \t\n\"'") {
			arg = strconv.Quote(arg)
		}

		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}

// Run runs the QEMU command as child process in the foreground and waits
// for it to exit.
//
// If the process does not exit successfully, a [*CommandError] is returned
// that carries the exit code of the process.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		cmdErr := &CommandError{
			Err:      err,
			ExitCode: -1,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		return cmdErr
	}

	return nil
}
