// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "github.com/aibor/vmlaunch/internal/sys"

// Accelerator is a QEMU hardware acceleration backend.
type Accelerator string

// Hardware acceleration backends of the supported host systems.
const (
	AcceleratorKVM Accelerator = "kvm"
	AcceleratorHVF Accelerator = "hvf"
)

// Display backends of the supported host systems.
const (
	DisplayGTK   = "gtk"
	DisplayCocoa = "cocoa"
	DisplayNone  = "none"
)

// ExecutableFor returns the name of the QEMU system emulator binary for the
// given architecture.
func ExecutableFor(arch sys.Arch) (string, error) {
	switch arch {
	case sys.AMD64:
		return "qemu-system-x86_64", nil
	case sys.ARM64:
		return "qemu-system-aarch64", nil
	default:
		return "", &ArgumentError{"no emulator for architecture " + arch.String()}
	}
}

// AcceleratorFor returns the platform native hardware acceleration backend:
// KVM on Linux and Hypervisor.framework on macOS.
func AcceleratorFor(hostOS sys.OS) (Accelerator, error) {
	switch hostOS {
	case sys.Linux:
		return AcceleratorKVM, nil
	case sys.MacOS:
		return AcceleratorHVF, nil
	default:
		return "", &ArgumentError{"no accelerator for os " + hostOS.String()}
	}
}

// DisplayFor returns the display backend matching the windowing system of the
// given host OS.
func DisplayFor(hostOS sys.OS) (string, error) {
	switch hostOS {
	case sys.Linux:
		return DisplayGTK, nil
	case sys.MacOS:
		return DisplayCocoa, nil
	default:
		return "", &ArgumentError{"no display for os " + hostOS.String()}
	}
}
