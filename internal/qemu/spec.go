// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"strconv"

	"github.com/aibor/vmlaunch/internal/sys"
)

const (
	// MountTag is the tag the shared directory is exposed to the guest with.
	// Mount it in the guest with "mount -t 9p -o trans=virtio host_share <dir>".
	MountTag = "host_share"

	// GuestSSHPort is the guest port the host SSH port is forwarded to.
	GuestSSHPort = 22

	netdevID = "net0"
	fsdevID  = "share0"
)

// Spec defines the parameters of a virtual machine launch.
type Spec struct {
	// Name of the guest as shown in window titles and process lists.
	Name string

	// Memory for the machine in MB.
	MemoryMB uint64

	// Number of CPUs for the guest.
	CPUs uint64

	// Path to the disk image to boot from.
	DiskImage string

	// Host TCP port forwarded to the guest's SSH port.
	SSHPort uint16

	// Path to the firmware image. Only used on arm64.
	Firmware string

	// Host directory exposed to the guest via 9p.
	ShareDir string

	// Display backend. If empty, the host's default is used.
	Display string
}

// Arguments compiles the argument list for the QEMU command on the given host.
//
// It has no side effects. The same input always results in the same list.
func (s Spec) Arguments(host sys.Host) ([]Argument, error) {
	accel, err := AcceleratorFor(host.OS)
	if err != nil {
		return nil, err
	}

	display := s.Display
	if display == "" {
		display, err = DisplayFor(host.OS)
		if err != nil {
			return nil, err
		}
	}

	args := s.commonArguments()

	switch host.Arch {
	case sys.AMD64:
		args = append(args,
			UniqueArg("accel", string(accel)),
			UniqueArg("cpu", "host"),
			UniqueArg("vga", "virtio"),
		)
	case sys.ARM64:
		args = append(args,
			UniqueArg("machine", "virt", "highmem=on"),
			UniqueArg("accel", string(accel)),
			UniqueArg("cpu", "host"),
			UniqueArg("bios", s.Firmware),
			RepeatableArg("device", "virtio-gpu-pci"),
		)
	default:
		return nil, &ArgumentError{"unsupported architecture: " + host.Arch.String()}
	}

	args = append(args, UniqueArg("display", display))

	return args, nil
}

func (s Spec) commonArguments() []Argument {
	hostForward := fmt.Sprintf("tcp::%d-:%d", s.SSHPort, GuestSSHPort)

	return []Argument{
		UniqueArg("name", s.Name),
		UniqueArg("m", strconv.FormatUint(s.MemoryMB, 10)),
		UniqueArg("smp", strconv.FormatUint(s.CPUs, 10)),
		// Paravirtualized block device with write-back caching.
		RepeatableArg("drive",
			Option("file", s.DiskImage),
			"if=virtio",
			"cache=writeback",
		),
		// User mode networking with SSH forwarded from the host.
		RepeatableArg("device", "virtio-net-pci", "netdev="+netdevID),
		RepeatableArg("netdev",
			"user",
			"id="+netdevID,
			"hostfwd="+hostForward,
		),
		// Input devices on an USB 3 controller.
		RepeatableArg("device", "qemu-xhci"),
		RepeatableArg("device", "usb-kbd"),
		RepeatableArg("device", "usb-tablet"),
		// Host directory shared via 9p.
		RepeatableArg("fsdev",
			"local",
			"id="+fsdevID,
			Option("path", s.ShareDir),
			"security_model=mapped-xattr",
		),
		RepeatableArg("device",
			"virtio-9p-pci",
			"fsdev="+fsdevID,
			"mount_tag="+MountTag,
		),
	}
}
