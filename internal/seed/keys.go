// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import (
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// AgentKeys returns the public keys held by the running ssh-agent in
// authorized_keys format.
//
// The agent is located via the SSH_AUTH_SOCK environment variable, like the
// OpenSSH tools do. It returns [ErrNoAgent] if no agent is reachable and
// [ErrNoKeys] if the agent holds no identities.
func AgentKeys() ([]string, error) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, fmt.Errorf("%w: SSH_AUTH_SOCK not set", ErrNoAgent)
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAgent, err)
	}
	defer conn.Close()

	identities, err := agent.NewClient(conn).List()
	if err != nil {
		return nil, fmt.Errorf("list agent keys: %w", err)
	}

	if len(identities) == 0 {
		return nil, fmt.Errorf("%w: agent has no identities", ErrNoKeys)
	}

	keys := make([]string, 0, len(identities))
	for _, key := range identities {
		keys = append(keys, key.String())
	}

	return keys, nil
}

// ParseAuthorizedKeys validates data in authorized_keys format and returns
// one entry per key. Blank lines and comments are skipped. Any entry that
// does not parse as an SSH public key fails the whole set.
func ParseAuthorizedKeys(data []byte) ([]string, error) {
	var keys []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		_, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			return nil, fmt.Errorf("parse authorized key: %w", err)
		}

		keys = append(keys, line)
	}

	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	return keys, nil
}
