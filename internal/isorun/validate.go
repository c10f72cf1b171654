// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package isorun

import "os"

// Validate checks the image file parameters of the given [Spec].
//
// The boot image is required and must exist. The secondary image is
// optional, but must exist if set.
func Validate(spec *Spec) error {
	if spec.Qemu.Image == "" {
		return &ConfigError{Err: ErrImageEmpty}
	}

	err := validateImagePath(spec.Qemu.Image)
	if err != nil {
		return err
	}

	if spec.Qemu.SecondaryImage != "" {
		err := validateImagePath(spec.Qemu.SecondaryImage)
		if err != nil {
			return err
		}
	}

	return nil
}

func validateImagePath(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return &ConfigError{Path: path, Err: ErrImageMissing}
	}

	if !stat.Mode().IsRegular() {
		return &ConfigError{Path: path, Err: ErrNotRegularFile}
	}

	return nil
}
