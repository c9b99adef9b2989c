// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launch provides the configuration of a single virtual machine
// launch. A [Config] is created from [Defaults], optionally overlaid with a
// profile file and command line overrides, and turned into a [Launch] by a
// [Validator]. Only a validated [Launch] can produce the QEMU command, so
// all prerequisites are checked before the emulator is started.
package launch
