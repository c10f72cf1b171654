// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/ironvale/isorun/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func authorizedKeyLine(t *testing.T) string {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	sshPub, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)

	return strings.TrimSpace(string(ssh.MarshalAuthorizedKey(sshPub)))
}

func TestParseAuthorizedKeys(t *testing.T) {
	first := authorizedKeyLine(t)
	second := authorizedKeyLine(t)

	data := "# created by test\n\n" + first + "\n" + second + "\n"

	keys, err := seed.ParseAuthorizedKeys([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, keys)
}

func TestParseAuthorizedKeysInvalid(t *testing.T) {
	_, err := seed.ParseAuthorizedKeys([]byte("not a key at all\n"))
	assert.Error(t, err)
}

func TestParseAuthorizedKeysEmpty(t *testing.T) {
	_, err := seed.ParseAuthorizedKeys([]byte("# comments only\n\n"))
	assert.ErrorIs(t, err, seed.ErrNoKeys)
}

func TestAgentKeysNoAgent(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	_, err := seed.AgentKeys()
	assert.ErrorIs(t, err, seed.ErrNoAgent)
}
