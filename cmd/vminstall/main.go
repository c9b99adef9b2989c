// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command vminstall installs QEMU with the host's package manager.
package main

import (
	"context"
	"os"

	"github.com/aibor/vmlaunch/internal/cmd"
)

func main() {
	os.Exit(cmd.RunInstall(
		context.Background(),
		os.Args[1:],
		cmd.IO{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
	))
}
