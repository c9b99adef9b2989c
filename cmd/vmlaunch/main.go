// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command vmlaunch boots an existing disk image with QEMU.
package main

import (
	"context"
	"os"

	"github.com/aibor/vmlaunch/internal/cmd"
)

func main() {
	// Signals keep their default disposition, so the emulator receives them
	// directly after exec.
	os.Exit(cmd.Run(
		context.Background(),
		os.Args[1:],
		cmd.IO{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	))
}
