// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "fmt"

// Arch is a supported host CPU architecture.
type Arch string

// Supported host architectures.
const (
	AMD64 Arch = "x86_64"
	ARM64 Arch = "arm64"
)

// ParseArch returns the [Arch] for the given machine type as reported by
// uname(2) or used by the Go toolchain.
func ParseArch(machine string) (Arch, error) {
	switch machine {
	case "x86_64", "amd64":
		return AMD64, nil
	case "arm64", "aarch64":
		return ARM64, nil
	default:
		return "", fmt.Errorf("%w: architecture %q", ErrUnsupportedPlatform, machine)
	}
}

// String implements [fmt.Stringer].
func (a Arch) String() string {
	return string(a)
}
