// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "slices"

const (
	// DisplayModeDefault uses the default graphical display backend.
	DisplayModeDefault DisplayMode = "default"
	// DisplayModeVNC suppresses the graphical display and starts a VNC
	// listener on display 0, bound to all IPv4 and IPv6 interfaces.
	DisplayModeVNC DisplayMode = "vnc"
)

// DisplayMode selects how the guest display is exposed.
type DisplayMode string

func (m *DisplayMode) isKnown() bool {
	knownDisplayModes := []DisplayMode{
		DisplayModeDefault,
		DisplayModeVNC,
	}

	return slices.Contains(knownDisplayModes, *m)
}

// String implements [fmt.Stringer].
func (m *DisplayMode) String() string {
	if !m.isKnown() {
		return ""
	}

	return string(*m)
}

// MarshalText implements [encoding.TextMarshaler].
func (m DisplayMode) MarshalText() ([]byte, error) {
	s := m.String()
	if s == "" {
		return nil, ErrDisplayModeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *DisplayMode) UnmarshalText(text []byte) error {
	dm := DisplayMode(text)

	if !dm.isKnown() {
		return ErrDisplayModeInvalid
	}

	*m = dm

	return nil
}
