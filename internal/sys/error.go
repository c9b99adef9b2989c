// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrUnsupportedPlatform is returned if the host operating system or
	// architecture is not supported.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")
)
