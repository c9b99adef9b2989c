// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package install

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// ErrEmptyCommand is returned by [ExecRunner.Run] for an empty argv.
var ErrEmptyCommand = errors.New("empty command")

// ExecRunner runs commands as child processes attached to the given
// streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

// Run implements [Runner].
func (r *ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run() //nolint:wrapcheck
}
