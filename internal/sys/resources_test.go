// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"testing"

	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeResources(t *testing.T) {
	res, err := sys.ProbeResources(t.Context())
	require.NoError(t, err)

	assert.Positive(t, res.MemoryMB, "memory")
	assert.Positive(t, res.CPUs, "cpus")
}

func TestResources_Exceeds(t *testing.T) {
	tests := []struct {
		name     string
		res      sys.Resources
		memory   uint64
		cpus     uint64
		expected []string
	}{
		{
			name:   "fits",
			res:    sys.Resources{MemoryMB: 8192, CPUs: 4},
			memory: 4096,
			cpus:   4,
		},
		{
			name:     "memory",
			res:      sys.Resources{MemoryMB: 2048, CPUs: 4},
			memory:   4096,
			cpus:     2,
			expected: []string{"memory 4096 MB > host 2048 MB"},
		},
		{
			name:   "both",
			res:    sys.Resources{MemoryMB: 2048, CPUs: 1},
			memory: 4096,
			cpus:   2,
			expected: []string{
				"memory 4096 MB > host 2048 MB",
				"cpus 2 > host 1",
			},
		},
		{
			name:   "unknown host values",
			memory: 4096,
			cpus:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.res.Exceeds(tt.memory, tt.cpus))
		})
	}
}
