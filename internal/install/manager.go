// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package install

import "github.com/aibor/vmlaunch/internal/sys"

// Manager is a package manager and the commands that install QEMU with it.
type Manager struct {
	Name string
	// Steps are run in order. Each step is a command and its arguments.
	Steps [][]string
	// NeedsRoot is set if the steps must run with root privileges.
	NeedsRoot bool
}

var (
	brew = Manager{
		Name:  "brew",
		Steps: [][]string{{"brew", "install", "qemu"}},
	}

	aptGet = Manager{
		Name: "apt-get",
		Steps: [][]string{
			{"apt-get", "update"},
			{
				"apt-get", "install", "-y",
				"qemu-system-x86", "qemu-system-arm", "qemu-utils",
				"qemu-efi-aarch64",
			},
		},
		NeedsRoot: true,
	}

	dnf = Manager{
		Name: "dnf",
		Steps: [][]string{{
			"dnf", "install", "-y",
			"qemu-kvm", "qemu-system-aarch64", "qemu-img", "edk2-aarch64",
		}},
		NeedsRoot: true,
	}

	yum = Manager{
		Name:      "yum",
		Steps:     [][]string{{"yum", "install", "-y", "qemu-kvm", "qemu-img"}},
		NeedsRoot: true,
	}

	pacman = Manager{
		Name:      "pacman",
		Steps:     [][]string{{"pacman", "-Sy", "--noconfirm", "qemu-full"}},
		NeedsRoot: true,
	}

	zypper = Manager{
		Name: "zypper",
		Steps: [][]string{{
			"zypper", "--non-interactive", "install",
			"qemu-x86", "qemu-arm", "qemu-tools",
		}},
		NeedsRoot: true,
	}

	apk = Manager{
		Name: "apk",
		Steps: [][]string{{
			"apk", "add",
			"qemu-system-x86_64", "qemu-system-aarch64", "qemu-img",
		}},
		NeedsRoot: true,
	}
)

// ManagersFor returns the supported package managers for the given OS in
// order of preference.
func ManagersFor(hostOS sys.OS) []Manager {
	switch hostOS {
	case sys.MacOS:
		return []Manager{brew}
	case sys.Linux:
		return []Manager{aptGet, dnf, yum, pacman, zypper, apk}
	default:
		return nil
	}
}
