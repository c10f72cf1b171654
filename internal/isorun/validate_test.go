// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package isorun_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironvale/isorun/internal/isorun"
	"github.com/ironvale/isorun/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempImage(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "disk.iso")
	require.NoError(t, os.WriteFile(path, []byte("image"), 0o644))

	return path
}

func TestValidate(t *testing.T) {
	existing := tempImage(t)

	tests := []struct {
		name        string
		spec        isorun.Spec
		expectedErr error
	}{
		{
			name: "valid",
			spec: isorun.Spec{
				Qemu: qemu.NewCommandSpec(existing),
			},
		},
		{
			name: "valid with secondary image",
			spec: func() isorun.Spec {
				spec := qemu.NewCommandSpec(existing)
				spec.SecondaryImage = existing

				return isorun.Spec{Qemu: spec}
			}(),
		},
		{
			name: "empty image",
			spec: isorun.Spec{
				Qemu: qemu.NewCommandSpec(""),
			},
			expectedErr: isorun.ErrImageEmpty,
		},
		{
			name: "missing image",
			spec: isorun.Spec{
				Qemu: qemu.NewCommandSpec("/nonexistent/disk.iso"),
			},
			expectedErr: isorun.ErrImageMissing,
		},
		{
			name: "missing secondary image",
			spec: func() isorun.Spec {
				spec := qemu.NewCommandSpec(existing)
				spec.SecondaryImage = "/nonexistent/seed.iso"

				return isorun.Spec{Qemu: spec}
			}(),
			expectedErr: isorun.ErrImageMissing,
		},
		{
			name: "image is a directory",
			spec: isorun.Spec{
				Qemu: qemu.NewCommandSpec(t.TempDir()),
			},
			expectedErr: isorun.ErrNotRegularFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := isorun.Validate(&tt.spec)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, &isorun.ConfigError{})

				return
			}

			assert.NoError(t, err)
		})
	}
}
