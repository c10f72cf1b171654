// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ironvale/isorun/internal/isorun"
	"github.com/ironvale/isorun/internal/qemu"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main entry point for the isorun CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr)

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	flags.spec.Qemu.NoKVM = !qemu.KVMAvailable()

	err = isorun.Run(ctx, &flags.spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return handleRunError(cfg.Stderr, err)
	}

	return 0
}

func handleParseArgsError(err error) int {
	// Help was requested, exit without an error.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	return 1
}

func handleRunError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "ERROR: %v\n", err)

	// Pass a real qemu exit code through, everything detected before the
	// launch exits 1.
	var cmdErr *qemu.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}

	return 1
}
