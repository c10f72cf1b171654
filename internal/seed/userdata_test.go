// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed_test

import (
	"strings"
	"testing"

	"github.com/ironvale/isorun/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestUserDataRender(t *testing.T) {
	userData := seed.NewUserData("tester", []string{
		"ssh-ed25519 AAAATESTKEY tester@host",
	})

	rendered, err := userData.Render()
	require.NoError(t, err)

	content := string(rendered)
	assert.True(t, strings.HasPrefix(content, "#cloud-config\n"),
		"cloud-init requires the #cloud-config header")
	assert.Contains(t, content, "name: tester")
	assert.Contains(t, content, "lock_passwd: false")
	assert.Contains(t, content, "ssh-ed25519 AAAATESTKEY tester@host")

	// The document must stay parseable YAML.
	var decoded seed.UserData
	require.NoError(t, yaml.Unmarshal(rendered, &decoded))
	assert.Equal(t, userData, decoded)
}

func TestMetaDataRender(t *testing.T) {
	metaData := seed.NewMetaData("isorun-vm")

	rendered, err := metaData.Render()
	require.NoError(t, err)

	content := string(rendered)
	assert.Contains(t, content, "instance-id: iid-")
	assert.Contains(t, content, "local-hostname: isorun-vm")
}

func TestMetaDataInstanceIDUnique(t *testing.T) {
	first := seed.NewMetaData("vm")
	second := seed.NewMetaData("vm")

	assert.NotEqual(t, first.InstanceID, second.InstanceID)
}
