// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"strings"
)

// OS is a supported host operating system family.
type OS string

// Supported host operating systems.
const (
	Linux OS = "linux"
	MacOS OS = "macos"
)

// ParseOS returns the [OS] for the given kernel name as reported by
// uname(2). The Go toolchain names are accepted as well.
func ParseOS(kernelName string) (OS, error) {
	switch strings.ToLower(kernelName) {
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", fmt.Errorf("%w: os %q", ErrUnsupportedPlatform, kernelName)
	}
}

// String implements [fmt.Stringer].
func (o OS) String() string {
	return string(o)
}
