// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package install

import (
	"errors"
	"strings"
)

var (
	// ErrNoPackageManager is returned if none of the supported package
	// managers is found on the host.
	ErrNoPackageManager = errors.New("no supported package manager found")

	// ErrNoSudo is returned if root privileges are required but sudo is not
	// available.
	ErrNoSudo = errors.New("root privileges required but sudo not found")

	// ErrEmulatorMissing is returned if the emulator is not found after
	// installation.
	ErrEmulatorMissing = errors.New("emulator not found after installation")
)

// StepError is returned if a step of a [Plan] fails.
type StepError struct {
	Argv []string
	Err  error
}

// Error implements the [error] interface.
func (e *StepError) Error() string {
	return "step \"" + strings.Join(e.Argv, " ") + "\": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*StepError) Is(other error) bool {
	_, ok := other.(*StepError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StepError) Unwrap() error {
	return e.Err
}
