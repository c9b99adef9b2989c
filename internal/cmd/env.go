// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"
)

const (
	// ArgsEnvVar holds arguments that are prepended to the command line.
	ArgsEnvVar = "VMLAUNCH_ARGS"

	// BaseDirEnvVar overrides the base directory.
	BaseDirEnvVar = "QEMU_BASE_DIR"

	// SSHUserEnvVar sets the user name of the SSH connection hint.
	SSHUserEnvVar = "VMLAUNCH_SSH_USER"

	// NoColorEnvVar disables colored output if set to any value.
	NoColorEnvVar = "NO_COLOR"

	defaultSSHUser = "root"
)

// EnvArgs returns vmlaunch arguments from the environment.
func EnvArgs(getenv func(string) string) []string {
	return strings.Fields(getenv(ArgsEnvVar))
}

// BaseDir returns the directory the default firmware and share paths are
// relative to. It is taken from [BaseDirEnvVar] if set, or the working
// directory otherwise.
func BaseDir(getenv func(string) string, getwd func() (string, error)) (string, error) {
	if dir := getenv(BaseDirEnvVar); dir != "" {
		return dir, nil
	}

	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	return dir, nil
}

// SSHUser returns the user for the SSH connection hint.
func SSHUser(getenv func(string) string) string {
	if user := getenv(SSHUserEnvVar); user != "" {
		return user
	}

	return defaultSSHUser
}
