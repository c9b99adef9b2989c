// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "fmt"

// Host describes the platform the emulator is run on.
type Host struct {
	OS   OS
	Arch Arch
}

// NewHost creates a [Host] from the kernel name and machine type as reported
// by uname(2).
//
// It returns [ErrUnsupportedPlatform] if either is not supported.
func NewHost(kernelName, machine string) (Host, error) {
	hostOS, err := ParseOS(kernelName)
	if err != nil {
		return Host{}, err
	}

	arch, err := ParseArch(machine)
	if err != nil {
		return Host{}, err
	}

	return Host{OS: hostOS, Arch: arch}, nil
}

// DetectHost returns the [Host] of the running system.
func DetectHost() (Host, error) {
	kernelName, machine, err := uname()
	if err != nil {
		return Host{}, err
	}

	return NewHost(kernelName, machine)
}

// String implements [fmt.Stringer].
func (h Host) String() string {
	return fmt.Sprintf("%s/%s", h.OS, h.Arch)
}
