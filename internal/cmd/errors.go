// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

// ErrHelp is returned if help was requested. Callers are supposed to exit
// without an error in this case.
var ErrHelp = flag.ErrHelp

// ErrEmptyFilePath is returned if an empty string is given as a file path.
var ErrEmptyFilePath = errors.New("file path must not be empty")

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

// Error implements the [error] interface.
func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

// Is implements the [errors.Is] interface.
func (*ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseArgsError) Unwrap() error {
	return e.err
}
