// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/aibor/vmlaunch/internal/install"
	"github.com/aibor/vmlaunch/internal/sys"
)

const (
	installName = "vminstall"

	installUsageMessage = `Usage of 'vminstall':
    vminstall [flags...]

Installs QEMU with the host's package manager.

Flags:
  -y, --yes              install without confirmation
      --dry-run          print the install commands and exit
      --debug            enable debug output
  -h, --help             show this help and exit
`
)

type installFlags struct {
	flagSet *flag.FlagSet

	assumeYes bool
	dryRun    bool
	debug     bool
	help      bool
}

func parseInstallArgs(args []string) (*installFlags, error) {
	f := &installFlags{
		flagSet: flag.NewFlagSet(installName, flag.ContinueOnError),
	}

	f.flagSet.SetOutput(io.Discard)
	f.flagSet.Usage = func() {}

	for _, n := range []string{"y", "yes"} {
		f.flagSet.BoolVar(&f.assumeYes, n, false, "install without confirmation")
	}

	for _, n := range []string{"h", "help"} {
		f.flagSet.BoolVar(&f.help, n, false, "show help and exit")
	}

	f.flagSet.BoolVar(&f.dryRun, "dry-run", false, "print commands only")
	f.flagSet.BoolVar(&f.debug, "debug", false, "enable debug output")

	positional, err := parseInterleaved(f.flagSet, args)
	if err != nil {
		return nil, err
	}

	if len(positional) > 0 && !f.help {
		return nil, &ParseArgsError{
			err: ErrTooManyArguments,
			msg: strings.Join(positional, " "),
		}
	}

	return f, nil
}

// installer is the host interaction of [RunInstall], replaceable in tests.
type installer struct {
	detectHost func() (sys.Host, error)
	lookPath   install.LookPathFunc
	isRoot     func() bool
	runner     func(cfg IO) install.Runner
	getenv     func(string) string
}

func osInstaller() installer {
	return installer{
		detectHost: sys.DetectHost,
		lookPath:   exec.LookPath,
		isRoot:     func() bool { return os.Geteuid() == 0 },
		runner: func(cfg IO) install.Runner {
			return &install.ExecRunner{
				Stdin:  cfg.Stdin,
				Stdout: cfg.Stdout,
				Stderr: cfg.Stderr,
			}
		},
		getenv: os.Getenv,
	}
}

func (i installer) run(ctx context.Context, flags *installFlags, cfg IO) error {
	host, err := i.detectHost()
	if err != nil {
		return fmt.Errorf("detect host: %w", err)
	}

	plan, err := install.NewPlan(host, i.lookPath, i.isRoot())
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	slog.Debug("Install plan",
		slog.String("host", host.String()),
		slog.String("manager", plan.Manager),
	)

	if flags.dryRun {
		fmt.Fprintln(cfg.Stdout, plan.String())
		return nil
	}

	fmt.Fprintf(cfg.Stdout, "Installing QEMU with %s:\n", plan.Manager)

	for _, step := range plan.Steps {
		fmt.Fprintln(cfg.Stdout, "  "+strings.Join(step, " "))
	}

	if !flags.assumeYes {
		ok, err := confirm("Continue?", cfg.Stdin, cfg.Stdout)
		if err != nil {
			return err
		}

		if !ok {
			fmt.Fprintln(cfg.Stdout, "Install cancelled")
			return nil
		}
	}

	err = plan.Execute(ctx, i.runner(cfg))
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}

	path, err := plan.Verify(i.lookPath)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	fmt.Fprintf(cfg.Stdout, "Installed %s\n", path)

	return nil
}

// RunInstall is the main entry point for the installer CLI command.
func RunInstall(ctx context.Context, args []string, cfg IO) int {
	return runInstall(ctx, args, cfg, osInstaller())
}

func runInstall(ctx context.Context, args []string, cfg IO, inst installer) int {
	reporter := NewTerminalReporter(installName, cfg.Stdout, cfg.Stderr, inst.getenv)

	flags, err := parseInstallArgs(args)
	if err != nil {
		reporter.Error(err)
		fmt.Fprintln(cfg.Stderr)
		fmt.Fprint(cfg.Stderr, installUsageMessage)

		return exitCodeFailure
	}

	setupLogging(cfg.Stderr, installName, flags.debug)

	if flags.help {
		fmt.Fprint(cfg.Stdout, installUsageMessage)
		return 0
	}

	err = inst.run(ctx, flags, cfg)
	if err != nil {
		reporter.Error(err)
		return exitCodeFailure
	}

	return 0
}
