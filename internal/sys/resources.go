// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/errgroup"
)

// Resources are the host's capacities relevant for sizing a guest.
type Resources struct {
	// Total physical memory in MB.
	MemoryMB uint64
	// Number of logical CPUs.
	CPUs uint64
}

// ProbeResources queries the host's total memory and logical CPU count.
func ProbeResources(ctx context.Context) (Resources, error) {
	var res Resources

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		stat, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			return fmt.Errorf("memory: %w", err)
		}

		res.MemoryMB = stat.Total >> 20

		return nil
	})

	group.Go(func() error {
		count, err := cpu.CountsWithContext(ctx, true)
		if err != nil {
			return fmt.Errorf("cpu count: %w", err)
		}

		res.CPUs = uint64(count) //nolint:gosec

		return nil
	})

	err := group.Wait()
	if err != nil {
		return Resources{}, err
	}

	return res, nil
}

// Exceeds returns the list of resources the given guest size exceeds.
func (r Resources) Exceeds(memoryMB, cpus uint64) []string {
	var exceeded []string

	if r.MemoryMB > 0 && memoryMB > r.MemoryMB {
		exceeded = append(exceeded,
			fmt.Sprintf("memory %d MB > host %d MB", memoryMB, r.MemoryMB))
	}

	if r.CPUs > 0 && cpus > r.CPUs {
		exceeded = append(exceeded,
			fmt.Sprintf("cpus %d > host %d", cpus, r.CPUs))
	}

	return exceeded
}
