// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "fmt"

const (
	// MemoryDefault is the guest memory in MiB. Slot count and maximum are
	// pinned to the same value, so no hotplug slots exist.
	MemoryDefault = 3072

	// HostSSHPort is the host TCP port forwarded to the guest SSH port.
	HostSSHPort = 60022

	guestSSHPort = 22

	bootDriveID   = "boot"
	attachDriveID = "attach"
)

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Path to the image to boot. Must reference an existing file.
	Image string

	// Optional path to a second image, attached as read-only optical
	// drive. Must reference an existing file if set.
	SecondaryImage string

	// Guest firmware to boot with.
	BootType BootType

	// Device emulation for the boot image.
	MediaType MediaType

	// Display backend for the guest.
	Display DisplayMode

	// Enable UEFI Secure Boot. Only meaningful with [BootTypeUEFI]; the
	// combination with BIOS is not rejected here, callers decide how to
	// surface it.
	SecureBoot bool

	// Attach a virtual braille display device chain.
	Accessibility bool

	// Memory for the machine in MiB.
	Memory uint64

	// Disable KVM hardware acceleration.
	NoKVM bool

	// Resolved firmware image paths. Required for [BootTypeUEFI]. The vars
	// path must point to a writable per-instance copy of the vars
	// template.
	FirmwareCode string
	FirmwareVars string
}

// NewCommandSpec returns a [CommandSpec] for the given boot image with all
// optional fields set to their defaults: BIOS boot from an optical drive
// with the default display backend.
func NewCommandSpec(image string) CommandSpec {
	return CommandSpec{
		Executable: "qemu-system-x86_64",
		Image:      image,
		BootType:   BootTypeBIOS,
		MediaType:  MediaTypeCDROM,
		Display:    DisplayModeDefault,
		Memory:     MemoryDefault,
	}
}

// Validate checks for known incompatibilities.
func (s *CommandSpec) Validate() error {
	if !s.BootType.isKnown() {
		return &ArgumentError{"unknown boot type: " + string(s.BootType)}
	}

	if !s.MediaType.isKnown() {
		return &ArgumentError{"unknown media type: " + string(s.MediaType)}
	}

	if !s.Display.isKnown() {
		return &ArgumentError{"unknown display mode: " + string(s.Display)}
	}

	if s.BootType == BootTypeUEFI {
		if s.FirmwareCode == "" {
			return &ArgumentError{"uefi boot requires firmware code path"}
		}

		if s.FirmwareVars == "" {
			return &ArgumentError{"uefi boot requires firmware vars path"}
		}
	}

	return nil
}

// arguments compiles the argument list for the QEMU command.
//
// The order is stable and deliberate. qemu resolves some option
// dependencies by position, so devices follow the controllers and
// backends they reference.
func (s *CommandSpec) arguments() []Argument {
	args := []Argument{
		UniqueArg("boot", "order=d"),
		UniqueArg("m", s.memoryValue()),
		UniqueArg("k", "en-us"),
		UniqueArg("name", "isorun,process=isorun"),
		RepeatableArg("device", "virtio-scsi-pci,id=scsi0"),
	}

	args = append(args,
		RepeatableArg("device", s.MediaType.DeviceDriver()+",drive="+bootDriveID),
		RepeatableArg("drive", s.driveValue(bootDriveID, s.MediaType, s.Image)),
	)

	if s.BootType == BootTypeUEFI {
		args = append(args, s.firmwareArguments()...)
	}

	if s.Accessibility {
		args = append(args,
			RepeatableArg("device", "usb-ehci,id=usb"),
			RepeatableArg("chardev", "braille,id=brltty"),
			RepeatableArg("device", "usb-braille,chardev=brltty"),
		)
	}

	if s.SecondaryImage != "" {
		args = append(args,
			RepeatableArg("device", "scsi-cd,drive="+attachDriveID),
			RepeatableArg("drive", s.driveValue(attachDriveID, MediaTypeCDROM, s.SecondaryImage)),
		)
	}

	if s.Display == DisplayModeVNC {
		args = append(args,
			UniqueArg("display", "none"),
			UniqueArg("vnc", "[::]:0"),
		)
	}

	args = append(args,
		RepeatableArg("device", "virtio-net-pci,netdev=net0"),
		UniqueArg("netdev", fmt.Sprintf(
			"user,id=net0,hostfwd=tcp::%d-:%d", HostSSHPort, guestSSHPort,
		)),
		RepeatableArg("device", "intel-hda"),
		RepeatableArg("device", "hda-duplex"),
	)

	if !s.NoKVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	args = append(args,
		// ACPI S3 sleep just hangs a headless guest.
		RepeatableArg("global", "ICH9-LPC.disable_s3=1"),
		RepeatableArg("serial", "mon:stdio"),
		UniqueArg("no-reboot"),
	)

	return args
}

func (s *CommandSpec) memoryValue() string {
	memory := s.Memory
	if memory == 0 {
		memory = MemoryDefault
	}

	return fmt.Sprintf("%dM,slots=0,maxmem=%dM", memory, memory)
}

func (*CommandSpec) driveValue(id string, media MediaType, file string) string {
	return fmt.Sprintf(
		"if=none,id=%s,format=raw,media=%s,readonly=on,file=%s",
		id, media.String(), file,
	)
}

// firmwareArguments returns the pflash setup for UEFI boot. Unit 0 carries
// the read-only code image, unit 1 the writable vars copy.
func (s *CommandSpec) firmwareArguments() []Argument {
	secure := "off"
	if s.SecureBoot {
		secure = "on"
	}

	return []Argument{
		UniqueArg("machine", "q35,smm=on"),
		RepeatableArg("drive",
			"if=pflash,format=raw,unit=0,readonly=on,file="+s.FirmwareCode),
		RepeatableArg("drive",
			"if=pflash,format=raw,unit=1,file="+s.FirmwareVars),
		RepeatableArg("global",
			"driver=cfi.pflash01,property=secure,value="+secure),
	}
}
