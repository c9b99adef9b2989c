// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"strconv"
	"testing"

	"github.com/aibor/vmlaunch/internal/qemu"
	"github.com/aibor/vmlaunch/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSpec_Arguments(t *testing.T) {
	spec := qemu.Spec{
		Name:      "demo",
		MemoryMB:  2048,
		CPUs:      4,
		DiskImage: "myimage.qcow2",
		SSHPort:   2200,
		Firmware:  "/repo/firmware/QEMU_EFI.fd",
		ShareDir:  "/repo",
	}

	common := []string{
		"-name", "demo",
		"-m", "2048",
		"-smp", "4",
		"-drive", "file=myimage.qcow2,if=virtio,cache=writeback",
		"-device", "virtio-net-pci,netdev=net0",
		"-netdev", "user,id=net0,hostfwd=tcp::2200-:22",
		"-device", "qemu-xhci",
		"-device", "usb-kbd",
		"-device", "usb-tablet",
		"-fsdev", "local,id=share0,path=/repo,security_model=mapped-xattr",
		"-device", "virtio-9p-pci,fsdev=share0,mount_tag=host_share",
	}

	tests := []struct {
		name        string
		spec        qemu.Spec
		host        sys.Host
		expected    []string
		expectedErr error
	}{
		{
			name: "linux x86_64",
			spec: spec,
			host: sys.Host{OS: sys.Linux, Arch: sys.AMD64},
			expected: append(common,
				"-accel", "kvm",
				"-cpu", "host",
				"-vga", "virtio",
				"-display", "gtk",
			),
		},
		{
			name: "macos x86_64",
			spec: spec,
			host: sys.Host{OS: sys.MacOS, Arch: sys.AMD64},
			expected: append(common,
				"-accel", "hvf",
				"-cpu", "host",
				"-vga", "virtio",
				"-display", "cocoa",
			),
		},
		{
			name: "linux arm64",
			spec: spec,
			host: sys.Host{OS: sys.Linux, Arch: sys.ARM64},
			expected: append(common,
				"-machine", "virt,highmem=on",
				"-accel", "kvm",
				"-cpu", "host",
				"-bios", "/repo/firmware/QEMU_EFI.fd",
				"-device", "virtio-gpu-pci",
				"-display", "gtk",
			),
		},
		{
			name: "macos arm64",
			spec: spec,
			host: sys.Host{OS: sys.MacOS, Arch: sys.ARM64},
			expected: append(common,
				"-machine", "virt,highmem=on",
				"-accel", "hvf",
				"-cpu", "host",
				"-bios", "/repo/firmware/QEMU_EFI.fd",
				"-device", "virtio-gpu-pci",
				"-display", "cocoa",
			),
		},
		{
			name: "display override",
			spec: func() qemu.Spec {
				s := spec
				s.Display = qemu.DisplayNone

				return s
			}(),
			host: sys.Host{OS: sys.Linux, Arch: sys.AMD64},
			expected: append(common,
				"-accel", "kvm",
				"-cpu", "host",
				"-vga", "virtio",
				"-display", "none",
			),
		},
		{
			name:        "unknown arch",
			spec:        spec,
			host:        sys.Host{OS: sys.Linux, Arch: sys.Arch("riscv64")},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name:        "unknown os",
			spec:        spec,
			host:        sys.Host{OS: sys.OS("plan9"), Arch: sys.AMD64},
			expectedErr: &qemu.ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tt.spec.Arguments(tt.host)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			actual, err := qemu.BuildArgumentStrings(args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestSpec_Arguments_x86IgnoresFirmware(t *testing.T) {
	spec := qemu.Spec{
		Name:      "demo",
		MemoryMB:  4096,
		CPUs:      2,
		DiskImage: "disk.img",
		SSHPort:   2222,
		Firmware:  "/does/not/exist.fd",
		ShareDir:  "/repo",
	}

	args, err := spec.Arguments(sys.Host{OS: sys.Linux, Arch: sys.AMD64})
	require.NoError(t, err)

	assert.Empty(t, qemu.ArgumentValues(args, "bios"))
	assert.Empty(t, qemu.ArgumentValues(args, "machine"))
}

func TestSpec_Arguments_escapesCommas(t *testing.T) {
	spec := qemu.Spec{
		Name:      "demo",
		MemoryMB:  4096,
		CPUs:      2,
		DiskImage: "/images/a,b.qcow2",
		SSHPort:   2222,
		ShareDir:  "/src/x,y",
	}

	args, err := spec.Arguments(sys.Host{OS: sys.Linux, Arch: sys.AMD64})
	require.NoError(t, err)

	assertDrive := qemu.ArgumentValueAssertionFunc("drive", assert.Equal)
	assertDrive(t, args, []string{
		"file=/images/a,,b.qcow2,if=virtio,cache=writeback",
	})

	assertFsdev := qemu.ArgumentValueAssertionFunc("fsdev", assert.Equal)
	assertFsdev(t, args, []string{
		"local,id=share0,path=/src/x,,y,security_model=mapped-xattr",
	})
}

func drawSpec(t *rapid.T) qemu.Spec {
	return qemu.Spec{
		Name:      rapid.StringMatching(`[a-z][a-z0-9-]{0,20}`).Draw(t, "name"),
		MemoryMB:  rapid.Uint64Range(128, 65536).Draw(t, "memory"),
		CPUs:      rapid.Uint64Range(1, 64).Draw(t, "cpus"),
		DiskImage: rapid.StringMatching(`[a-zA-Z0-9_./,-]{1,40}`).Draw(t, "image"),
		SSHPort:   rapid.Uint16Range(1, 65535).Draw(t, "port"),
		Firmware:  rapid.StringMatching(`/[a-zA-Z0-9_./-]{1,40}`).Draw(t, "firmware"),
		ShareDir:  rapid.StringMatching(`/[a-zA-Z0-9_./,-]{0,40}`).Draw(t, "share"),
		Display:   rapid.SampledFrom([]string{"", "none", "sdl"}).Draw(t, "display"),
	}
}

func drawHost(t *rapid.T) sys.Host {
	return sys.Host{
		OS:   rapid.SampledFrom([]sys.OS{sys.Linux, sys.MacOS}).Draw(t, "os"),
		Arch: rapid.SampledFrom([]sys.Arch{sys.AMD64, sys.ARM64}).Draw(t, "arch"),
	}
}

func TestPropertySpecArgumentsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := drawSpec(t)
		host := drawHost(t)

		first, err := spec.Arguments(host)
		if err != nil {
			t.Fatalf("first: %v", err)
		}

		second, err := spec.Arguments(host)
		if err != nil {
			t.Fatalf("second: %v", err)
		}

		firstStrings, err := qemu.BuildArgumentStrings(first)
		if err != nil {
			t.Fatalf("build first: %v", err)
		}

		secondStrings, err := qemu.BuildArgumentStrings(second)
		if err != nil {
			t.Fatalf("build second: %v", err)
		}

		assert.Equal(t, firstStrings, secondStrings)
	})
}

func TestPropertySpecArgumentsCommon(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spec := drawSpec(t)
		host := drawHost(t)

		args, err := spec.Arguments(host)
		if err != nil {
			t.Fatalf("arguments: %v", err)
		}

		netdevs := qemu.ArgumentValues(args, "netdev")
		if len(netdevs) != 1 {
			t.Fatalf("expected a single netdev, got %v", netdevs)
		}

		assert.Contains(t, netdevs[0], "hostfwd=tcp::"+
			strconv.FormatUint(uint64(spec.SSHPort), 10)+"-:22")
		assert.Equal(t, []string{strconv.FormatUint(spec.CPUs, 10)},
			qemu.ArgumentValues(args, "smp"))
		assert.Contains(t, qemu.ArgumentValues(args, "device"), "usb-kbd")
		assert.Contains(t, qemu.ArgumentValues(args, "device"), "usb-tablet")

		bios := qemu.ArgumentValues(args, "bios")
		if host.Arch == sys.ARM64 {
			assert.Equal(t, []string{spec.Firmware}, bios)
		} else {
			assert.Empty(t, bios)
		}
	})
}
