// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "slices"

const (
	// MediaTypeCDROM attaches the boot image as a read-only optical drive.
	MediaTypeCDROM MediaType = "cdrom"
	// MediaTypeDisk attaches the boot image with hard disk emulation. The
	// drive is still opened read-only.
	MediaTypeDisk MediaType = "disk"
)

// MediaType selects the device emulation for the boot image.
//
// The string value doubles as the value for the "media" property of the
// qemu drive spec.
type MediaType string

func (t *MediaType) isKnown() bool {
	knownMediaTypes := []MediaType{
		MediaTypeCDROM,
		MediaTypeDisk,
	}

	return slices.Contains(knownMediaTypes, *t)
}

// String implements [fmt.Stringer].
func (t *MediaType) String() string {
	if !t.isKnown() {
		return ""
	}

	return string(*t)
}

// DeviceDriver returns the SCSI device driver for the media type.
func (t *MediaType) DeviceDriver() string {
	if *t == MediaTypeDisk {
		return "scsi-hd"
	}

	return "scsi-cd"
}

// MarshalText implements [encoding.TextMarshaler].
func (t MediaType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "" {
		return nil, ErrMediaTypeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *MediaType) UnmarshalText(text []byte) error {
	mt := MediaType(text)

	if !mt.isKnown() {
		return ErrMediaTypeInvalid
	}

	*t = mt

	return nil
}
