// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

// NotFoundError is returned if a required firmware image is not present on
// the system.
type NotFoundError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *NotFoundError) Error() string {
	return "firmware image missing: " + e.Path
}

// Is implements the [errors.Is] interface.
func (*NotFoundError) Is(other error) bool {
	_, ok := other.(*NotFoundError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
