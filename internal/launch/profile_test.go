// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/aibor/vmlaunch/internal/launch"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultProfilePath(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		getenv := func(string) string { return "/etc/vm.toml" }
		assert.Equal(t, "/etc/vm.toml", launch.DefaultProfilePath(getenv))
	})

	t.Run("xdg", func(t *testing.T) {
		getenv := func(string) string { return "" }
		expected := filepath.Join(xdg.ConfigHome, "vmlaunch", "config.toml")
		assert.Equal(t, expected, launch.DefaultProfilePath(getenv))
	})
}

func TestLoadProfile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expected    launch.Config
		expectedErr error
	}{
		{
			name:     "empty",
			expected: validConfig(),
		},
		{
			name: "all",
			content: `
memory = 8192
cpus = 8
ssh_port = 2200
efi = "fw/QEMU_EFI.fd"
share = "/srv/share"
display = "none"
`,
			expected: launch.Config{
				Name:      "demo",
				MemoryMB:  8192,
				CPUs:      8,
				SSHPort:   2200,
				DiskImage: "/repo/myimage.qcow2",
				Firmware:  "/home/user/.config/vmlaunch/fw/QEMU_EFI.fd",
				ShareDir:  "/srv/share",
				Display:   "none",
			},
		},
		{
			name:    "partial",
			content: "cpus = 4\n",
			expected: func() launch.Config {
				cfg := validConfig()
				cfg.CPUs = 4

				return cfg
			}(),
		},
		{
			name:        "unknown key",
			content:     "name = \"foo\"\n",
			expectedErr: launch.ErrInvalidProfile,
		},
		{
			name:        "malformed",
			content:     "memory = \n",
			expectedErr: launch.ErrInvalidProfile,
		},
		{
			name:        "wrong type",
			content:     "memory = \"lots\"\n",
			expectedErr: launch.ErrInvalidProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/home/user/.config/vmlaunch/config.toml"
			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, path, []byte(tt.content), 0o644))

			profile, err := launch.LoadProfile(fsys, path)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expected, profile.Apply(validConfig()))
		})
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	profile, err := launch.LoadProfile(afero.NewMemMapFs(), "/nope/config.toml")
	require.NoError(t, err)
	assert.Equal(t, launch.Profile{}, profile)
}

func TestPropertyProfileApplyIsolation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := validConfig()
		cpus := rapid.Uint64Range(1, 1024).Draw(t, "cpus")

		actual := launch.Profile{CPUs: &cpus}.Apply(base)

		expected := base
		expected.CPUs = cpus

		if actual != expected {
			t.Fatalf("expected %+v, got %+v", expected, actual)
		}
	})
}
