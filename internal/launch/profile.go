// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	// ProfileEnvVar is the environment variable that overrides the profile
	// path.
	ProfileEnvVar = "VMLAUNCH_CONFIG"

	profileDir  = "vmlaunch"
	profileFile = "config.toml"
)

// ErrInvalidProfile is returned if the profile file can not be decoded.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile holds the user's persistent [Config] preferences. Only fields set
// in the file are applied.
type Profile struct {
	MemoryMB *uint64 `toml:"memory"`
	CPUs     *uint64 `toml:"cpus"`
	SSHPort  *uint64 `toml:"ssh_port"`
	Firmware *string `toml:"efi"`
	ShareDir *string `toml:"share"`
	Display  *string `toml:"display"`
}

// DefaultProfilePath returns the path of the profile file. It is taken from
// [ProfileEnvVar] if set, otherwise it is located in the XDG config
// directory.
func DefaultProfilePath(getenv func(string) string) string {
	if path := getenv(ProfileEnvVar); path != "" {
		return path
	}

	return filepath.Join(xdg.ConfigHome, profileDir, profileFile)
}

// LoadProfile reads the profile at the given path. A missing file results
// in an empty [Profile].
//
// Relative paths in the file are resolved against the directory of the
// file.
func LoadProfile(fsys afero.Fs, path string) (Profile, error) {
	var profile Profile

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No profile", slog.String("path", path))
			return profile, nil
		}

		return profile, fmt.Errorf("read profile: %w", err)
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	err = decoder.Decode(&profile)
	if err != nil {
		return profile, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, path, err)
	}

	dir := filepath.Dir(path)

	for _, field := range []*string{profile.Firmware, profile.ShareDir} {
		err := resolvePath(dir, field)
		if err != nil {
			return profile, fmt.Errorf("%w: %s: %w", ErrInvalidProfile, path, err)
		}
	}

	slog.Debug("Loaded profile", slog.String("path", path))

	return profile, nil
}

// Apply returns the given [Config] with all fields set in the profile
// replaced.
func (p Profile) Apply(cfg Config) Config {
	if p.MemoryMB != nil {
		cfg.MemoryMB = *p.MemoryMB
	}

	if p.CPUs != nil {
		cfg.CPUs = *p.CPUs
	}

	if p.SSHPort != nil {
		cfg.SSHPort = *p.SSHPort
	}

	if p.Firmware != nil {
		cfg.Firmware = *p.Firmware
	}

	if p.ShareDir != nil {
		cfg.ShareDir = *p.ShareDir
	}

	if p.Display != nil {
		cfg.Display = *p.Display
	}

	return cfg
}

// resolvePath expands the home directory and makes relative paths relative
// to dir.
func resolvePath(dir string, path *string) error {
	if path == nil || *path == "" {
		return nil
	}

	expanded, err := sys.ExpandHome(*path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(dir, expanded)
	}

	*path = expanded

	return nil
}
