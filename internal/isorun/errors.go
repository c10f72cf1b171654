// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package isorun

import "errors"

var (
	// ErrImageEmpty is returned if no boot image path is given.
	ErrImageEmpty = errors.New("empty image")

	// ErrImageMissing is returned if an image path does not exist on disk.
	ErrImageMissing = errors.New("missing image")

	// ErrNotRegularFile is returned if an image path exists but is not a
	// regular file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ConfigError indicates invalid launch configuration input.
type ConfigError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return e.Err.Error() + ": " + e.Path
}

// Is implements the [errors.Is] interface.
func (*ConfigError) Is(other error) bool {
	_, ok := other.(*ConfigError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
