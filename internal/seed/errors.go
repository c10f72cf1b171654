// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import "errors"

var (
	// ErrNoKeys is returned if no SSH public keys could be collected.
	ErrNoKeys = errors.New("no ssh public keys found")

	// ErrNoAgent is returned if no ssh-agent is reachable.
	ErrNoAgent = errors.New("ssh-agent not available")
)
