// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"fmt"
	"strconv"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
)

// GuestMountPoint is the directory the mount hint mounts the shared
// directory on in the guest.
const GuestMountPoint = "/mnt/host"

// Launch is a validated [Config] bound to the host it was validated for.
//
// Create with [Validator.Validate].
type Launch struct {
	Config   Config
	Host     sys.Host
	Emulator string
}

// Arguments returns the QEMU arguments for the launch.
func (l *Launch) Arguments() ([]qemu.Argument, error) {
	args, err := l.Config.Spec().Arguments(l.Host)
	if err != nil {
		return nil, fmt.Errorf("build arguments: %w", err)
	}

	return args, nil
}

// Command returns the QEMU command for the launch.
func (l *Launch) Command() (*qemu.Command, error) {
	args, err := l.Arguments()
	if err != nil {
		return nil, err
	}

	cmd, err := qemu.NewCommand(l.Emulator, args)
	if err != nil {
		return nil, fmt.Errorf("new command: %w", err)
	}

	return cmd, nil
}

// SummaryField is a labeled value of the launch summary.
type SummaryField struct {
	Label string
	Value string
}

// Summary returns the labeled facts of the launch in display order.
func (l *Launch) Summary() []SummaryField {
	fields := []SummaryField{
		{"Name", l.Config.Name},
		{"Image", l.Config.DiskImage},
		{"Memory", strconv.FormatUint(l.Config.MemoryMB, 10) + " MB"},
		{"CPUs", strconv.FormatUint(l.Config.CPUs, 10)},
		{"Architecture", l.Host.Arch.String()},
	}

	accel, err := qemu.AcceleratorFor(l.Host.OS)
	if err == nil {
		fields = append(fields, SummaryField{"Accelerator", string(accel)})
	}

	fields = append(fields, SummaryField{"Shared", l.Config.ShareDir})

	if l.Host.Arch == sys.ARM64 {
		fields = append(fields, SummaryField{"Firmware", l.Config.Firmware})
	}

	return fields
}

// SSHHint returns the command to connect to the guest with.
func (l *Launch) SSHHint(user string) string {
	return fmt.Sprintf("ssh -p %d %s@localhost", l.Config.SSHPort, user)
}

// MountHint returns the command to mount the shared directory in the
// guest with.
func (*Launch) MountHint() string {
	return "mount -t 9p -o trans=virtio " + qemu.MountTag + " " +
		GuestMountPoint
}
