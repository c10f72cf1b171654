// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ironvale/isorun/internal/cmd"
	"github.com/stretchr/testify/assert"
)

func runWith(t *testing.T, args []string) (int, string) {
	t.Helper()

	var stdout, stderr strings.Builder

	rc := cmd.Run(context.Background(), args, cmd.IO{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return rc, stderr.String()
}

func TestRunHelp(t *testing.T) {
	rc, stderr := runWith(t, []string{"-h"})

	assert.Equal(t, 0, rc)
	assert.Contains(t, stderr, "Usage of 'isorun'")
}

func TestRunNoArgs(t *testing.T) {
	rc, stderr := runWith(t, nil)

	assert.Equal(t, 1, rc)
	assert.Contains(t, stderr, "Usage of 'isorun'")
}

func TestRunUnknownFlag(t *testing.T) {
	rc, _ := runWith(t, []string{"-x"})

	assert.Equal(t, 1, rc)
}

func TestRunMissingImage(t *testing.T) {
	rc, stderr := runWith(t, []string{"-i", "/nonexistent/disk.iso"})

	assert.Equal(t, 1, rc)
	assert.Contains(t, stderr, "ERROR: ")
	assert.Contains(t, stderr, "missing image")
}

func TestRunSeedHelp(t *testing.T) {
	var stdout, stderr strings.Builder

	rc := cmd.RunSeed(context.Background(), []string{"-h"}, cmd.IO{
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, 0, rc)
	assert.Contains(t, stderr.String(), "Usage of 'isorun-seed'")
}

func TestRunSeedMissingKeyFile(t *testing.T) {
	var stdout, stderr strings.Builder

	rc := cmd.RunSeed(context.Background(), []string{
		"-u", "tester",
		"-k", "/nonexistent/authorized_keys",
		"-o", "/nonexistent/dir/seed.iso",
	}, cmd.IO{
		Stdout: &stdout,
		Stderr: &stderr,
	})

	assert.Equal(t, 1, rc)
	assert.Contains(t, stderr.String(), "ERROR: ")
}
