// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux || darwin

package qemu

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process with the QEMU command. The given
// environment is passed to the new process image.
//
// It only returns if the process image could not be replaced. The error is
// always a [*CommandError].
func (c *Command) Exec(env []string) error {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Path)
	argv = append(argv, c.Args...)

	err := unix.Exec(c.Path, argv, env)

	return &CommandError{
		Err:      fmt.Errorf("exec: %w", err),
		ExitCode: -1,
	}
}
