// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"path/filepath"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// Defaults of a [Config].
const (
	DefaultMemoryMB = 4096
	DefaultCPUs     = 2
	DefaultSSHPort  = 2222

	// DefaultFirmwarePath is the firmware image relative to the base
	// directory.
	DefaultFirmwarePath = "firmware/QEMU_EFI.fd"

	// LegacyFirmwarePath is the firmware location used by earlier versions,
	// relative to the base directory. It is used if the default does not
	// exist.
	LegacyFirmwarePath = "QEMU_EFI.fd"

	namePrefix     = "vm-"
	nameTimeFormat = "20060102-150405"
)

// Config is the configuration of a single launch.
type Config struct {
	// Name of the guest. Must not contain commas, as QEMU would interpret
	// them as option separators.
	Name string `validate:"required,excludesall=0x2C"`

	// Memory in MB.
	MemoryMB uint64 `validate:"gt=0"`

	// Number of virtual CPUs.
	CPUs uint64 `validate:"gt=0"`

	// Host TCP port forwarded to the guest's SSH port.
	SSHPort uint64 `validate:"min=1,max=65535"`

	// Path of the disk image to boot.
	DiskImage string `validate:"required"`

	// Path of the firmware image. Only required on arm64 hosts.
	Firmware string

	// Host directory shared with the guest.
	ShareDir string `validate:"required"`

	// Display backend. Host default if empty.
	Display string
}

// Defaults returns the default [Config] for the given base directory.
//
// The name is qualified with the current time of the given clock. The
// firmware path is resolved with [ResolveFirmware]. The disk image is not
// set.
func Defaults(clock clockwork.Clock, fsys afero.Fs, baseDir string) Config {
	return Config{
		Name:     namePrefix + clock.Now().Format(nameTimeFormat),
		MemoryMB: DefaultMemoryMB,
		CPUs:     DefaultCPUs,
		SSHPort:  DefaultSSHPort,
		Firmware: ResolveFirmware(fsys, baseDir),
		ShareDir: baseDir,
	}
}

// Spec returns the [qemu.Spec] for the config.
func (c Config) Spec() qemu.Spec {
	return qemu.Spec{
		Name:      c.Name,
		MemoryMB:  c.MemoryMB,
		CPUs:      c.CPUs,
		DiskImage: c.DiskImage,
		SSHPort:   uint16(c.SSHPort), //nolint:gosec
		Firmware:  c.Firmware,
		ShareDir:  c.ShareDir,
		Display:   c.Display,
	}
}

// ResolveFirmware returns the firmware path to use for the given base
// directory. It is [DefaultFirmwarePath] unless only [LegacyFirmwarePath]
// exists.
func ResolveFirmware(fsys afero.Fs, baseDir string) string {
	defaultPath := filepath.Join(baseDir, DefaultFirmwarePath)
	if checkRegularFile(fsys, defaultPath) == nil {
		return defaultPath
	}

	legacyPath := filepath.Join(baseDir, LegacyFirmwarePath)
	if checkRegularFile(fsys, legacyPath) == nil {
		return legacyPath
	}

	return defaultPath
}
