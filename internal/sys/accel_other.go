// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux && !darwin

package sys

// AccelerationAvailable always returns false, as no hardware acceleration
// backend is supported on this platform.
func AccelerationAvailable() bool {
	return false
}
