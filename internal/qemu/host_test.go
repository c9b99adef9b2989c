// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutableFor(t *testing.T) {
	tests := []struct {
		arch        sys.Arch
		expected    string
		expectedErr error
	}{
		{
			arch:     sys.AMD64,
			expected: "qemu-system-x86_64",
		},
		{
			arch:     sys.ARM64,
			expected: "qemu-system-aarch64",
		},
		{
			arch:        sys.Arch("riscv64"),
			expectedErr: &qemu.ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.arch.String(), func(t *testing.T) {
			actual, err := qemu.ExecutableFor(tt.arch)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestAcceleratorFor(t *testing.T) {
	accel, err := qemu.AcceleratorFor(sys.Linux)
	require.NoError(t, err)
	assert.Equal(t, qemu.AcceleratorKVM, accel)

	accel, err = qemu.AcceleratorFor(sys.MacOS)
	require.NoError(t, err)
	assert.Equal(t, qemu.AcceleratorHVF, accel)

	_, err = qemu.AcceleratorFor(sys.OS("plan9"))
	require.ErrorIs(t, err, &qemu.ArgumentError{})
}

func TestDisplayFor(t *testing.T) {
	display, err := qemu.DisplayFor(sys.Linux)
	require.NoError(t, err)
	assert.Equal(t, qemu.DisplayGTK, display)

	display, err = qemu.DisplayFor(sys.MacOS)
	require.NoError(t, err)
	assert.Equal(t, qemu.DisplayCocoa, display)

	_, err = qemu.DisplayFor(sys.OS("plan9"))
	require.ErrorIs(t, err, &qemu.ArgumentError{})
}
