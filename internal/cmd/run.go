// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/aibor/vmlaunch/internal/launch"
	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

const exitCodeFailure = 1

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// LaunchFunc starts the emulator command. It only returns if the command
// could not be started or has exited.
type LaunchFunc func(ctx context.Context, cmd *qemu.Command, cfg IO) error

// host interaction, replaceable in tests.
type system struct {
	getenv     func(string) string
	getwd      func() (string, error)
	fsys       afero.Fs
	clock      clockwork.Clock
	detectHost func() (sys.Host, error)
	lookPath   launch.LookPathFunc
	probe      func(context.Context) (sys.Resources, error)
	canAccel   func() bool
	launch     LaunchFunc
}

func osSystem() system {
	return system{
		getenv:     os.Getenv,
		getwd:      os.Getwd,
		fsys:       afero.NewOsFs(),
		clock:      clockwork.NewRealClock(),
		detectHost: sys.DetectHost,
		lookPath:   exec.LookPath,
		probe:      sys.ProbeResources,
		canAccel:   sys.AccelerationAvailable,
		launch:     execOrRun,
	}
}

// execOrRun replaces the current process with the emulator. If that is not
// supported, the emulator is run as child process and waited for.
func execOrRun(ctx context.Context, cmd *qemu.Command, cfg IO) error {
	err := cmd.Exec(os.Environ())
	if !errors.Is(err, qemu.ErrExecNotSupported) {
		return err //nolint:wrapcheck
	}

	slog.Debug("Exec not supported, running emulator as child process")

	return cmd.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr) //nolint:wrapcheck
}

type runner struct {
	system

	cfg      IO
	reporter Reporter
	machine  stateMachine
}

func (r *runner) config(flags *flags) (launch.Config, error) {
	baseDir, err := BaseDir(r.getenv, r.getwd)
	if err != nil {
		return launch.Config{}, err
	}

	slog.Debug("Base directory", slog.String("path", baseDir))

	cfg := launch.Defaults(r.clock, r.fsys, baseDir)

	profile, err := launch.LoadProfile(r.fsys, launch.DefaultProfilePath(r.getenv))
	if err != nil {
		return launch.Config{}, fmt.Errorf("profile: %w", err)
	}

	return flags.applyOverrides(profile.Apply(cfg)), nil
}

func (r *runner) warnResources(ctx context.Context, l *launch.Launch) {
	resources, err := r.probe(ctx)
	if err != nil {
		slog.Warn("Failed to probe host resources", slog.Any("error", err))
	} else {
		for _, msg := range resources.Exceeds(l.Config.MemoryMB, l.Config.CPUs) {
			r.reporter.Warn("guest exceeds host resources: " + msg)
		}
	}

	if l.Host.OS == sys.Linux && !r.canAccel() {
		r.reporter.Warn("/dev/kvm is not accessible, the emulator will fail " +
			"to enable acceleration")
	}
}

func (r *runner) run(ctx context.Context, flags *flags) error {
	cfg, err := r.config(flags)
	if err != nil {
		return err
	}

	r.machine.advance(StateDetecting)

	host, err := r.detectHost()
	if err != nil {
		return fmt.Errorf("detect host: %w", err)
	}

	slog.Debug("Detected host", slog.String("host", host.String()))

	r.machine.advance(StateValidating)

	l, err := launch.NewValidator(r.fsys, r.lookPath).Validate(cfg, host)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	r.machine.advance(StateConfiguring)

	cmd, err := l.Command()
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	if flags.dryRun {
		fmt.Fprintln(r.cfg.Stdout, cmd.String())
		return nil
	}

	r.warnResources(ctx, l)

	r.machine.advance(StateConfirming)

	r.reporter.Banner(l, SSHUser(r.getenv))

	if !flags.assumeYes {
		ok, err := confirm("Launch now?", r.cfg.Stdin, r.cfg.Stdout)
		if err != nil {
			return err
		}

		if !ok {
			fmt.Fprintln(r.cfg.Stdout, "Launch cancelled")
			return nil
		}
	}

	r.machine.advance(StateLaunched)

	return r.launch(ctx, cmd, r.cfg)
}

func handleParseArgsError(err error, reporter Reporter, usage io.Writer) int {
	// Invalid flags are reported along with the usage.
	reporter.Error(err)

	if errors.Is(err, &ParseArgsError{}) {
		fmt.Fprintln(usage)
		printUsage(usage)
	}

	return exitCodeFailure
}

func handleRunError(err error, reporter Reporter) int {
	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		// The emulator ran and reported its own errors.
		slog.Debug("Emulator exited", slog.Int("exit_code", cmdErr.ExitCode))
		return cmdErr.ExitCode
	}

	reporter.Error(err)

	return exitCodeFailure
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	return run(ctx, args, cfg, osSystem())
}

func run(ctx context.Context, args []string, cfg IO, env system) int {
	reporter := NewTerminalReporter(name, cfg.Stdout, cfg.Stderr, env.getenv)

	args = append(EnvArgs(env.getenv), args...)

	flags, err := parseArgs(args)
	if err != nil {
		return handleParseArgsError(err, reporter, cfg.Stderr)
	}

	setupLogging(cfg.Stderr, name, flags.debug)

	switch {
	case flags.help:
		printUsage(cfg.Stdout)
		return 0
	case flags.version:
		err := printVersionInformation(cfg.Stdout)
		if err != nil {
			reporter.Error(err)
			return exitCodeFailure
		}

		return 0
	}

	r := &runner{
		system:   env,
		cfg:      cfg,
		reporter: reporter,
	}
	defer r.machine.terminate()

	err = r.run(ctx, flags)
	if err != nil {
		return handleRunError(err, reporter)
	}

	return 0
}
