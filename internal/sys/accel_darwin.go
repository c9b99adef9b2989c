// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "golang.org/x/sys/unix"

// AccelerationAvailable checks if Hypervisor.framework is supported by the
// running kernel.
func AccelerationAvailable() bool {
	support, err := unix.SysctlUint32("kern.hv_support")

	return err == nil && support == 1
}
