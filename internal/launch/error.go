// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidConfig is returned if a [Config] field violates its
	// constraints.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrImageNotFound is returned if the disk image is not an existing
	// regular file.
	ErrImageNotFound = errors.New("disk image not found")

	// ErrEmulatorNotInstalled is returned if no QEMU binary for the host
	// architecture is found in PATH.
	ErrEmulatorNotInstalled = errors.New("emulator not installed")

	// ErrFirmwareMissing is returned if the firmware image required on arm64
	// does not exist.
	ErrFirmwareMissing = errors.New("firmware missing")

	// ErrNotRegularFile is returned if a path exists but is not a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ValidationError is returned by [Validator.Validate]. Kind is one of the
// sentinel errors of this package.
type ValidationError struct {
	Kind  error
	Path  string
	Cause error
}

// Error implements the [error] interface.
func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}

	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

// FieldErrors is the human-readable form of [validator.ValidationErrors].
type FieldErrors []string

func newFieldErrors(errs validator.ValidationErrors) FieldErrors {
	msgs := make(FieldErrors, 0, len(errs))

	for _, fieldErr := range errs {
		msgs = append(msgs, formatFieldError(fieldErr))
	}

	return msgs
}

// Error implements the [error] interface.
func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "max":
		return field + " must be at most " + fieldErr.Param()
	case "excludesall":
		return field + " must not contain a comma"
	default:
		return field + " is invalid (" + fieldErr.Tag() + ")"
	}
}
