// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"os/user"

	"github.com/ironvale/isorun/internal/seed"
)

const (
	seedName = "isorun-seed"

	seedUsageMessage = `Usage of 'isorun-seed':
    isorun-seed [flags...]

Generates a cloud-init seed ISO granting SSH access for a single user. The
public keys are taken from the running ssh-agent, or from authorized_keys
files given with -k. Attach the result with 'isorun -c'.
`

	hostnameDefault = "isorun-vm"
	outputDefault   = "seed.iso"
)

type seedFlags struct {
	spec    seed.Spec
	flagSet *flag.FlagSet
}

func newSeedFlags(output io.Writer) *seedFlags {
	flags := &seedFlags{
		spec: seed.Spec{
			Hostname: hostnameDefault,
			Output:   outputDefault,
		},
	}

	flags.initFlagset(output)

	return flags
}

func parseSeedArgs(args []string, output io.Writer) (*seedFlags, error) {
	flags := newSeedFlags(output)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *seedFlags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.spec.User == "" {
		current, err := user.Current()
		if err != nil {
			return f.fail("determine current user (use -u)", err)
		}

		f.spec.User = current.Username
	}

	return nil
}

func (f *seedFlags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(seedName, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.spec.User,
		"u",
		f.spec.User,
		"guest user to create (default: current user)",
	)

	flagSet.StringVar(
		&f.spec.Hostname,
		"n",
		f.spec.Hostname,
		"guest hostname",
	)

	flagSet.Var(
		(*FilePath)(&f.spec.Output),
		"o",
		"output path of the seed ISO",
	)

	flagSet.Var(
		(*FilePathList)(&f.spec.KeyFiles),
		"k",
		"authorized_keys file to read instead of the ssh-agent. "+
			"Flag may be used more than once.",
	)

	f.flagSet = flagSet
}

func (f *seedFlags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *seedFlags) usage() {
	fmt.Fprint(f.flagSet.Output(), seedUsageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
