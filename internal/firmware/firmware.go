// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultDir is where the OVMF package installs its firmware images.
const DefaultDir = "/usr/share/OVMF"

const (
	codeFile        = "OVMF_CODE.fd"
	codeSecBootFile = "OVMF_CODE.secboot.fd"
	varsFile        = "OVMF_VARS.fd"
)

// Firmware describes an OVMF installation.
type Firmware struct {
	// Directory containing the firmware images. Empty means [DefaultDir].
	Dir string
}

func (f *Firmware) dir() string {
	if f.Dir == "" {
		return DefaultDir
	}

	return f.Dir
}

// CodePath returns the path to the firmware code image, the secure boot
// variant if secureBoot is set. It returns a [NotFoundError] if the image
// does not exist.
func (f *Firmware) CodePath(secureBoot bool) (string, error) {
	name := codeFile
	if secureBoot {
		name = codeSecBootFile
	}

	path := filepath.Join(f.dir(), name)

	_, err := os.Stat(path)
	if err != nil {
		return "", &NotFoundError{Path: path, Err: err}
	}

	return path, nil
}

// StageVars copies the vars template into the given working directory and
// returns the path to the copy. It returns a [NotFoundError] if the
// template does not exist.
func (f *Firmware) StageVars(workDir string) (string, error) {
	template := filepath.Join(f.dir(), varsFile)

	src, err := os.Open(template)
	if err != nil {
		return "", &NotFoundError{Path: template, Err: err}
	}
	defer src.Close()

	varsPath := filepath.Join(workDir, varsFile)

	dst, err := os.OpenFile(varsPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create vars copy: %w", err)
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("copy vars template: %w", err)
	}

	err = dst.Close()
	if err != nil {
		return "", fmt.Errorf("close vars copy: %w", err)
	}

	return varsPath, nil
}
