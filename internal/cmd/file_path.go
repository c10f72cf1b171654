// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FilePath is a [flag.Value] that resolves the given path to an absolute
// one.
type FilePath string

func (f *FilePath) String() string {
	return string(*f)
}

func (f *FilePath) Set(s string) error {
	path, err := AbsoluteFilePath(s)

	*f = FilePath(path)

	return err
}

// FilePathList is a [flag.Value] that collects absolute file paths. It can
// be used multiple times.
type FilePathList []string

func (f *FilePathList) String() string {
	return strings.Join(*f, ",")
}

func (f *FilePathList) Set(s string) error {
	path, err := AbsoluteFilePath(s)
	if err != nil {
		return err
	}

	*f = append(*f, path)

	return nil
}

// AbsoluteFilePath returns the absolute representation of the given path.
func AbsoluteFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}
