// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOption is returned for flags that are not defined.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMissingValue is returned if a flag that requires a value is the last
	// argument.
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidValue is returned if a flag value can not be parsed.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingImage is returned if no disk image argument is given.
	ErrMissingImage = errors.New("no disk image given")

	// ErrTooManyArguments is returned for additional positional arguments.
	ErrTooManyArguments = errors.New("too many arguments")

	// ErrReadBuildInfo is returned if the build information is not embedded
	// in the binary.
	ErrReadBuildInfo = errors.New("failed to read build info")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	if e.msg == "" {
		return e.err.Error()
	}

	return fmt.Sprintf("%v: %s", e.err, e.msg)
}

func (*ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
