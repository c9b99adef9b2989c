// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux && !darwin

package sys

import "runtime"

// There is no uname on the remaining platforms. Report the Go names, so
// [NewHost] can reject them with a meaningful message.
func uname() (string, string, error) {
	return runtime.GOOS, runtime.GOARCH, nil
}
