// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/aibor/vmlaunch/internal/launch"
)

const (
	name = "vmlaunch"

	portMax = 65535

	usageMessage = `Usage of 'vmlaunch':
    vmlaunch [flags...] image

Flags:
  -n, --name NAME        name of the guest (default vm-<timestamp>)
  -m, --memory MB        memory of the guest in MB (default 4096)
  -c, --cpus N           number of virtual CPUs (default 2)
  -p, --ssh-port PORT    host port forwarded to the guest's SSH port
                         (default 2222)
      --efi PATH         firmware image, required on arm64 hosts
                         (default $QEMU_BASE_DIR/firmware/QEMU_EFI.fd)
      --share DIR        host directory shared with the guest
                         (default $QEMU_BASE_DIR)
      --display NAME     display backend (default gtk on Linux, cocoa on macOS)
  -y, --yes              launch without confirmation
      --dry-run          print the emulator command and exit
      --debug            enable debug output
      --version          show version and exit
  -h, --help             show this help and exit

QEMU_BASE_DIR defaults to the working directory.

Defaults can be set in the profile file $XDG_CONFIG_HOME/vmlaunch/config.toml.
Its path can be overridden with VMLAUNCH_CONFIG.

All flags can also be provided via environment variable VMLAUNCH_ARGS:
    VMLAUNCH_ARGS="--memory 8192 --yes" vmlaunch disk.qcow2
`
)

// Set on build.
var version = "dev"

type flags struct {
	flagSet *flag.FlagSet

	// Holds the values of explicitly set flags only. See
	// [flags.applyOverrides].
	values launch.Config
	image  string

	assumeYes bool
	dryRun    bool
	debug     bool
	version   bool
	help      bool
}

func newFlags() *flags {
	flags := &flags{}
	flags.initFlagset()

	return flags
}

func (f *flags) initFlagset() {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	f.flagSet = flagSet

	f.stringVar(&f.values.Name, "guest name", "n", "name")

	f.uintVar(&f.values.MemoryMB, 1, 0, "guest memory in MB", "m", "memory")
	f.uintVar(&f.values.CPUs, 1, 0, "number of guest CPUs", "c", "cpus")
	f.uintVar(&f.values.SSHPort, 1, portMax, "forwarded SSH port",
		"p", "ssh-port")

	f.flagSet.Var((*FilePath)(&f.values.Firmware), "efi", "firmware image")
	f.flagSet.Var((*FilePath)(&f.values.ShareDir), "share", "shared directory")
	f.stringVar(&f.values.Display, "display backend", "display")

	f.boolVar(&f.assumeYes, "launch without confirmation", "y", "yes")
	f.boolVar(&f.dryRun, "print command only", "dry-run")
	f.boolVar(&f.debug, "enable debug output", "debug")
	f.boolVar(&f.version, "show version and exit", "version")
	f.boolVar(&f.help, "show help and exit", "h", "help")
}

func (f *flags) stringVar(value *string, usage string, names ...string) {
	for _, n := range names {
		f.flagSet.StringVar(value, n, "", usage)
	}
}

func (f *flags) boolVar(value *bool, usage string, names ...string) {
	for _, n := range names {
		f.flagSet.BoolVar(value, n, false, usage)
	}
}

func (f *flags) uintVar(
	value *uint64,
	lower, upper uint64,
	usage string,
	names ...string,
) {
	limited := &LimitedUintValue{Value: value, Lower: lower, Upper: upper}
	for _, n := range names {
		f.flagSet.Var(limited, n, usage)
	}
}

// parseArgs parses the given arguments. Flags and the disk image argument
// may be interleaved. Arguments after "--" are not interpreted as flags.
func parseArgs(args []string) (*flags, error) {
	f := newFlags()

	positional, err := parseInterleaved(f.flagSet, args)
	if err != nil {
		return nil, err
	}

	if f.help || f.version {
		return f, nil
	}

	switch {
	case len(positional) == 0:
		return nil, &ParseArgsError{err: ErrMissingImage}
	case len(positional) > 1:
		return nil, &ParseArgsError{
			err: ErrTooManyArguments,
			msg: strings.Join(positional[1:], " "),
		}
	}

	f.image = positional[0]

	return f, nil
}

// parseInterleaved parses all flags in the given arguments and returns the
// positional arguments in order.
func parseInterleaved(flagSet *flag.FlagSet, args []string) ([]string, error) {
	flagArgs, trailing, err := splitArgs(flagSet, args)
	if err != nil {
		return nil, err
	}

	var positional []string

	for len(flagArgs) > 0 {
		err := flagSet.Parse(flagArgs)
		if err != nil {
			return nil, &ParseArgsError{
				err: ErrInvalidValue,
				msg: strings.TrimPrefix(err.Error(), "invalid value "),
			}
		}

		// Parsing stops at the first non-flag argument.
		remaining := flagSet.Args()
		if len(remaining) == 0 {
			break
		}

		positional = append(positional, remaining[0])
		flagArgs = remaining[1:]
	}

	return append(positional, trailing...), nil
}

// splitArgs checks all flags for existence and values and splits the
// arguments at the terminator "--". It returns the arguments before and the
// ones after the terminator.
func splitArgs(flagSet *flag.FlagSet, args []string) ([]string, []string, error) {
	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]

		if arg == "--" {
			return args[:idx], slices.Clone(args[idx+1:]), nil
		}

		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		flagName, _, hasValue := strings.Cut(strings.TrimPrefix(arg[1:], "-"), "=")

		flg := flagSet.Lookup(flagName)
		if flg == nil {
			return nil, nil, &ParseArgsError{err: ErrUnknownOption, msg: arg}
		}

		if hasValue || isBoolFlag(flg) {
			continue
		}

		if idx == len(args)-1 {
			return nil, nil, &ParseArgsError{err: ErrMissingValue, msg: arg}
		}

		// Skip the value.
		idx++
	}

	return args, nil, nil
}

func isBoolFlag(flg *flag.Flag) bool {
	boolFlag, ok := flg.Value.(interface{ IsBoolFlag() bool })
	return ok && boolFlag.IsBoolFlag()
}

// applyOverrides returns the given config with the fields of all explicitly
// set flags replaced.
func (f *flags) applyOverrides(cfg launch.Config) launch.Config {
	f.flagSet.Visit(func(flg *flag.Flag) {
		switch flg.Name {
		case "n", "name":
			cfg.Name = f.values.Name
		case "m", "memory":
			cfg.MemoryMB = f.values.MemoryMB
		case "c", "cpus":
			cfg.CPUs = f.values.CPUs
		case "p", "ssh-port":
			cfg.SSHPort = f.values.SSHPort
		case "efi":
			cfg.Firmware = f.values.Firmware
		case "share":
			cfg.ShareDir = f.values.ShareDir
		case "display":
			cfg.Display = f.values.Display
		}
	})

	if f.image != "" {
		cfg.DiskImage = f.image
	}

	return cfg
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageMessage)
}

func printVersionInformation(w io.Writer) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(w, "%s: %s\n\n", name, version)
	fmt.Fprintln(w, buildInfo.String())

	return nil
}
