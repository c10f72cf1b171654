// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package isorun

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironvale/isorun/internal/firmware"
	"github.com/ironvale/isorun/internal/qemu"
)

// Spec describes a single [Run].
type Spec struct {
	Qemu     qemu.CommandSpec
	Firmware firmware.Firmware
}

// Run boots the image described by the given [Spec].
//
// A temporary working directory is created for per-instance state (the UEFI
// vars copy) and removed on all exit paths. The QEMU process runs attached
// to the given streams until the guest shuts down or the context is
// cancelled.
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	err := Validate(spec)
	if err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "isorun")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer removeWorkDir(workDir)

	cmd, err := prepare(spec, workDir)
	if err != nil {
		return err
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	err = cmd.Run(ctx, stdin, stdout, stderr)
	if err != nil {
		return fmt.Errorf("qemu run: %w", err)
	}

	return nil
}

// prepare stages firmware for UEFI boots and compiles the QEMU command.
//
// BIOS boots never touch the firmware files.
func prepare(spec *Spec, workDir string) (*qemu.Command, error) {
	if spec.Qemu.SecureBoot && spec.Qemu.BootType != qemu.BootTypeUEFI {
		// Tolerated, the flag only has an effect for UEFI boots.
		slog.Warn("secure boot requested without uefi boot, ignoring")
	}

	if spec.Qemu.BootType == qemu.BootTypeUEFI {
		codePath, err := spec.Firmware.CodePath(spec.Qemu.SecureBoot)
		if err != nil {
			return nil, err
		}

		varsPath, err := spec.Firmware.StageVars(workDir)
		if err != nil {
			return nil, err
		}

		spec.Qemu.FirmwareCode = codePath
		spec.Qemu.FirmwareVars = varsPath
	}

	cmd, err := qemu.NewCommand(spec.Qemu)
	if err != nil {
		return nil, fmt.Errorf("new qemu command: %w", err)
	}

	return cmd, nil
}

func removeWorkDir(path string) {
	slog.Debug("Removing work dir", slog.String("path", path))

	err := os.RemoveAll(path)
	if err != nil {
		slog.Error("Failed to remove work dir",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}
