// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package install

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
)

const sudo = "sudo"

// LookPathFunc resolves an executable name on the search path, like
// [exec.LookPath].
type LookPathFunc func(file string) (string, error)

// Runner runs a single command.
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// Plan is the list of commands that install QEMU on a host.
type Plan struct {
	Host    sys.Host
	Manager string
	Steps   [][]string
}

// NewPlan creates a [Plan] for the given host using the first of its
// [ManagersFor] that is found with lookPath. Steps are prefixed with sudo if
// they need root and isRoot is false.
func NewPlan(host sys.Host, lookPath LookPathFunc, isRoot bool) (*Plan, error) {
	for _, manager := range ManagersFor(host.OS) {
		_, err := lookPath(manager.Name)
		if err != nil {
			slog.Debug("Package manager not found",
				slog.String("name", manager.Name))

			continue
		}

		plan := &Plan{
			Host:    host,
			Manager: manager.Name,
			Steps:   make([][]string, 0, len(manager.Steps)),
		}

		useSudo := manager.NeedsRoot && !isRoot
		if useSudo {
			_, err := lookPath(sudo)
			if err != nil {
				return nil, ErrNoSudo
			}
		}

		for _, step := range manager.Steps {
			argv := slices.Clone(step)
			if useSudo {
				argv = append([]string{sudo}, argv...)
			}

			plan.Steps = append(plan.Steps, argv)
		}

		return plan, nil
	}

	return nil, fmt.Errorf("%w for %s", ErrNoPackageManager, host.OS)
}

// String returns the steps one per line.
func (p *Plan) String() string {
	lines := make([]string, 0, len(p.Steps))
	for _, step := range p.Steps {
		lines = append(lines, strings.Join(step, " "))
	}

	return strings.Join(lines, "\n")
}

// Execute runs all steps in order and stops at the first failure.
func (p *Plan) Execute(ctx context.Context, runner Runner) error {
	for _, step := range p.Steps {
		slog.Debug("Run install step", slog.String("step", strings.Join(step, " ")))

		err := runner.Run(ctx, step)
		if err != nil {
			return &StepError{Argv: step, Err: err}
		}
	}

	return nil
}

// Verify checks that the emulator for the plan's host architecture is on
// the search path.
func (p *Plan) Verify(lookPath LookPathFunc) (string, error) {
	executable, err := qemu.ExecutableFor(p.Host.Arch)
	if err != nil {
		return "", fmt.Errorf("emulator: %w", err)
	}

	path, err := lookPath(executable)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEmulatorMissing, executable, err)
	}

	return path, nil
}
