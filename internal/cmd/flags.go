// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/ironvale/isorun/internal/isorun"
	"github.com/ironvale/isorun/internal/qemu"
)

const (
	name = "isorun"

	usageMessage = `Usage of 'isorun':
    isorun [flags...] -i <image>

Boots the given ISO or disk image in QEMU. The guest serial console is
attached to the current terminal. Host TCP port 60022 is forwarded to the
guest SSH port.
`
)

type flags struct {
	spec    isorun.Spec
	flagSet *flag.FlagSet
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		spec: isorun.Spec{
			Qemu: qemu.NewCommandSpec(""),
		},
	}

	flags.initFlagset(output)

	return flags
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(output)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	// Invoking the tool without any arguments is a request for guidance,
	// not a valid run.
	if len(args) == 0 {
		f.flagSet.Usage()
		return &ParseArgsError{msg: "no arguments given"}
	}

	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.spec.Qemu.Image == "" {
		return f.fail("no image given (use -i)", nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.BoolVar(
		&f.spec.Qemu.Accessibility,
		"a",
		f.spec.Qemu.Accessibility,
		"attach a virtual braille display",
	)

	flagSet.BoolFunc(
		"b",
		"boot with legacy BIOS firmware (default)",
		func(string) error {
			f.spec.Qemu.BootType = qemu.BootTypeBIOS
			return nil
		},
	)

	flagSet.BoolFunc(
		"u",
		"boot with UEFI firmware (OVMF)",
		func(string) error {
			f.spec.Qemu.BootType = qemu.BootTypeUEFI
			return nil
		},
	)

	flagSet.BoolVar(
		&f.spec.Qemu.SecureBoot,
		"s",
		f.spec.Qemu.SecureBoot,
		"enable UEFI Secure Boot (requires -u)",
	)

	flagSet.BoolFunc(
		"d",
		"attach the image with hard disk emulation instead of optical",
		func(string) error {
			f.spec.Qemu.MediaType = qemu.MediaTypeDisk
			return nil
		},
	)

	flagSet.Var(
		(*FilePath)(&f.spec.Qemu.Image),
		"i",
		"path to the image to boot (required)",
	)

	flagSet.Var(
		(*FilePath)(&f.spec.Qemu.SecondaryImage),
		"c",
		"path to a second image attached as optical drive",
	)

	flagSet.BoolFunc(
		"v",
		"expose the display via VNC on display 0 instead of a window",
		func(string) error {
			f.spec.Qemu.Display = qemu.DisplayModeVNC
			return nil
		},
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
