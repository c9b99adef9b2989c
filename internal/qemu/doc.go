// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running QEMU system
// emulator commands that boot a disk image. It expects the required QEMU
// binary to be present on the system.
//
// The argument list is built from a [Spec] and a [sys.Host] without any side
// effects, so the same input always results in the same list. A [Command]
// either replaces the current process with the emulator or runs it as a
// child process and reports its exit code.
package qemu
