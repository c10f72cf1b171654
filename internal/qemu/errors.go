// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "errors"

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrBootTypeInvalid is returned if a boot type is invalid.
	ErrBootTypeInvalid = errors.New("unknown boot type")

	// ErrMediaTypeInvalid is returned if a media type is invalid.
	ErrMediaTypeInvalid = errors.New("unknown media type")

	// ErrDisplayModeInvalid is returned if a display mode is invalid.
	ErrDisplayModeInvalid = errors.New("unknown display mode")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred during command execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "qemu: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
