// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux || darwin

package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func uname() (string, string, error) {
	var utsname unix.Utsname

	err := unix.Uname(&utsname)
	if err != nil {
		return "", "", fmt.Errorf("uname: %w", err)
	}

	kernelName := unix.ByteSliceToString(utsname.Sysname[:])
	machine := unix.ByteSliceToString(utsname.Machine[:])

	return kernelName, machine, nil
}
