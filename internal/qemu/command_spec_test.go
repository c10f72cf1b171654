// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"strings"
	"testing"

	"github.com/ironvale/isorun/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArgs(t *testing.T, spec qemu.CommandSpec) []string {
	t.Helper()

	cmd, err := qemu.NewCommand(spec)
	require.NoError(t, err)

	return cmd.Args()
}

func TestCommandSpecValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*qemu.CommandSpec)
		expectedErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*qemu.CommandSpec) {},
		},
		{
			name: "empty boot type",
			mutate: func(s *qemu.CommandSpec) {
				s.BootType = ""
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "unknown media type",
			mutate: func(s *qemu.CommandSpec) {
				s.MediaType = "floppy"
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "unknown display mode",
			mutate: func(s *qemu.CommandSpec) {
				s.Display = "spice"
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "uefi without firmware code",
			mutate: func(s *qemu.CommandSpec) {
				s.BootType = qemu.BootTypeUEFI
				s.FirmwareVars = "/tmp/vars.fd"
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "uefi without firmware vars",
			mutate: func(s *qemu.CommandSpec) {
				s.BootType = qemu.BootTypeUEFI
				s.FirmwareCode = "/usr/share/OVMF/OVMF_CODE.fd"
			},
			expectedErr: &qemu.ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := qemu.NewCommandSpec("disk.iso")
			tt.mutate(&spec)

			err := spec.Validate()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCommandArgsDeterministic(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.Accessibility = true
	spec.Display = qemu.DisplayModeVNC

	assert.Equal(t, buildArgs(t, spec), buildArgs(t, spec))
}

func TestCommandArgsBIOSOptical(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.NoKVM = true

	args := buildArgs(t, spec)

	assert.Contains(t, args, "scsi-cd,drive=boot")
	assert.Contains(t, args,
		"if=none,id=boot,format=raw,media=cdrom,readonly=on,file=disk.iso")
	assert.NotContains(t, args, "-enable-kvm")

	for _, arg := range args {
		assert.NotContains(t, arg, "pflash",
			"bios boot must not set up firmware drives")
	}
}

func TestCommandArgsDiskMedia(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.img")
	spec.MediaType = qemu.MediaTypeDisk

	args := buildArgs(t, spec)

	assert.Contains(t, args, "scsi-hd,drive=boot")
	assert.Contains(t, args,
		"if=none,id=boot,format=raw,media=disk,readonly=on,file=disk.img")
}

func TestCommandArgsUEFISecureBoot(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.BootType = qemu.BootTypeUEFI
	spec.SecureBoot = true
	spec.FirmwareCode = "/usr/share/OVMF/OVMF_CODE.secboot.fd"
	spec.FirmwareVars = "/tmp/work/OVMF_VARS.fd"

	args := buildArgs(t, spec)

	assert.Contains(t, args,
		"if=pflash,format=raw,unit=0,readonly=on,"+
			"file=/usr/share/OVMF/OVMF_CODE.secboot.fd")
	assert.Contains(t, args,
		"if=pflash,format=raw,unit=1,file=/tmp/work/OVMF_VARS.fd")
	assert.Contains(t, args, "driver=cfi.pflash01,property=secure,value=on")
	assert.Contains(t, args, "q35,smm=on")
}

func TestCommandArgsUEFIWithoutSecureBoot(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.BootType = qemu.BootTypeUEFI
	spec.FirmwareCode = "/usr/share/OVMF/OVMF_CODE.fd"
	spec.FirmwareVars = "/tmp/work/OVMF_VARS.fd"

	args := buildArgs(t, spec)

	assert.Contains(t, args, "driver=cfi.pflash01,property=secure,value=off")
	assert.Contains(t, args,
		"if=pflash,format=raw,unit=0,readonly=on,"+
			"file=/usr/share/OVMF/OVMF_CODE.fd")
}

func TestCommandArgsAccessibility(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.Accessibility = true

	args := buildArgs(t, spec)

	assert.Contains(t, args, "braille,id=brltty")
	assert.Contains(t, args, "usb-braille,chardev=brltty")
}

func TestCommandArgsSecondaryImage(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")
	spec.SecondaryImage = "seed.iso"

	args := buildArgs(t, spec)

	assert.Contains(t, args, "scsi-cd,drive=attach")
	assert.Contains(t, args,
		"if=none,id=attach,format=raw,media=cdrom,readonly=on,file=seed.iso")
}

func TestCommandArgsDisplay(t *testing.T) {
	t.Run("vnc", func(t *testing.T) {
		spec := qemu.NewCommandSpec("disk.iso")
		spec.Display = qemu.DisplayModeVNC

		args := buildArgs(t, spec)

		assert.Contains(t, args, "-vnc")
		assert.Contains(t, args, "[::]:0")
		assert.Contains(t, args, "-display")
		assert.Contains(t, args, "none")
	})

	t.Run("default", func(t *testing.T) {
		spec := qemu.NewCommandSpec("disk.iso")

		args := buildArgs(t, spec)

		assert.NotContains(t, args, "-vnc")
		assert.NotContains(t, args, "-display")
	})
}

func TestCommandArgsTail(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")

	args := buildArgs(t, spec)
	joined := strings.Join(args, " ")

	assert.Contains(t, args, "user,id=net0,hostfwd=tcp::60022-:22")
	assert.Contains(t, args, "ICH9-LPC.disable_s3=1")
	assert.Contains(t, args, "mon:stdio")
	assert.Contains(t, args, "-no-reboot")
	assert.True(t, strings.HasSuffix(joined, "-no-reboot"),
		"no-reboot must stay the final argument")
}

func TestCommandString(t *testing.T) {
	spec := qemu.NewCommandSpec("disk.iso")

	cmd, err := qemu.NewCommand(spec)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(cmd.String(), "qemu-system-x86_64 "))
}
