// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// LookPathFunc resolves an executable name on the search path, like
// [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// Validator checks a [Config] against the host.
type Validator struct {
	fsys     afero.Fs
	lookPath LookPathFunc
	structs  *validator.Validate
}

// NewValidator creates a new [Validator] that checks files on the given file
// system and looks up the emulator binary with the given function.
func NewValidator(fsys afero.Fs, lookPath LookPathFunc) *Validator {
	return &Validator{
		fsys:     fsys,
		lookPath: lookPath,
		structs:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the given [Config] for the given host and returns a
// [Launch] on success.
//
// Checks are run in a fixed order and the first failure is returned as
// [ValidationError]: field constraints, disk image, emulator binary and
// firmware. The firmware is only checked on arm64 hosts.
func (v *Validator) Validate(cfg Config, host sys.Host) (*Launch, error) {
	err := v.structs.Struct(cfg)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			err = newFieldErrors(fieldErrs)
		}

		return nil, &ValidationError{Kind: ErrInvalidConfig, Cause: err}
	}

	err = checkRegularFile(v.fsys, cfg.DiskImage)
	if err != nil {
		return nil, &ValidationError{
			Kind:  ErrImageNotFound,
			Path:  cfg.DiskImage,
			Cause: err,
		}
	}

	executable, err := qemu.ExecutableFor(host.Arch)
	if err != nil {
		return nil, fmt.Errorf("emulator: %w", err)
	}

	emulator, err := v.lookPath(executable)
	if err != nil {
		return nil, &ValidationError{
			Kind:  ErrEmulatorNotInstalled,
			Path:  executable,
			Cause: err,
		}
	}

	slog.Debug("Found emulator", slog.String("path", emulator))

	if host.Arch == sys.ARM64 {
		if cfg.Firmware == "" {
			return nil, &ValidationError{Kind: ErrFirmwareMissing}
		}

		err = checkRegularFile(v.fsys, cfg.Firmware)
		if err != nil {
			return nil, &ValidationError{
				Kind:  ErrFirmwareMissing,
				Path:  cfg.Firmware,
				Cause: err,
			}
		}
	}

	return &Launch{
		Config:   cfg,
		Host:     host,
		Emulator: emulator,
	}, nil
}
