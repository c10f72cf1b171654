// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"

	"github.com/ironvale/isorun/internal/seed"
)

// RunSeed is the main entry point for the isorun-seed CLI command.
func RunSeed(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr)

	flags, err := parseSeedArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	err = seed.Build(ctx, &flags.spec)
	if err != nil {
		fmt.Fprintf(cfg.Stderr, "ERROR: %v\n", err)
		return 1
	}

	fmt.Fprintln(cfg.Stdout, flags.spec.Output)

	return 0
}
