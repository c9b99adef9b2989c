// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "golang.org/x/sys/unix"

const kvmDevicePath = "/dev/kvm"

// AccelerationAvailable checks if KVM can be used by the current user.
func AccelerationAvailable() bool {
	return unix.Access(kvmDevicePath, unix.R_OK|unix.W_OK) == nil
}
