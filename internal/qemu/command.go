// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"slices"
	"strings"
)

// Command is a runnable QEMU command.
//
// Create with [NewCommand]. The argument list is compiled once and does not
// change afterwards.
type Command struct {
	executable string
	args       []string
}

// NewCommand validates the given [CommandSpec] and compiles it into a
// [Command].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	return &Command{
		executable: spec.Executable,
		args:       args,
	}, nil
}

// Args returns a copy of the compiled argument strings.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return c.executable + " " + strings.Join(c.args, " ")
}

// Run starts the QEMU process attached to the given streams and blocks
// until it terminates.
//
// The serial console is connected to the process's stdio, so the caller's
// terminal becomes the guest console. Cancelling the context kills the
// process. Any failure is returned as [CommandError] carrying the
// subprocess exit code, or -1 if the process did not run.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.executable, c.args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return &CommandError{Err: err, ExitCode: exitCode}
	}

	return nil
}
