// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "slices"

const (
	// BootTypeBIOS boots with the legacy SeaBIOS firmware built into QEMU.
	BootTypeBIOS BootType = "bios"
	// BootTypeUEFI boots with OVMF firmware images attached as pflash
	// drives. Requires the firmware code and vars paths to be set in the
	// [CommandSpec].
	BootTypeUEFI BootType = "uefi"
)

// BootType selects the guest firmware.
type BootType string

func (t *BootType) isKnown() bool {
	knownBootTypes := []BootType{
		BootTypeBIOS,
		BootTypeUEFI,
	}

	return slices.Contains(knownBootTypes, *t)
}

// String implements [fmt.Stringer].
func (t *BootType) String() string {
	if !t.isKnown() {
		return ""
	}

	return string(*t)
}

// MarshalText implements [encoding.TextMarshaler].
func (t BootType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, ErrBootTypeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *BootType) UnmarshalText(text []byte) error {
	bt := BootType(text)

	if !bt.isKnown() {
		return ErrBootTypeInvalid
	}

	*t = bt

	return nil
}
