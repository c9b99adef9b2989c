// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux && !darwin

package qemu

// Exec always fails with [ErrExecNotSupported]. Use [Command.Run] instead.
func (*Command) Exec(_ []string) error {
	return &CommandError{
		Err:      ErrExecNotSupported,
		ExitCode: -1,
	}
}
