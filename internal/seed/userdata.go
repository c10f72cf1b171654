// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const cloudConfigHeader = "#cloud-config\n"

// User is a cloud-config user entry.
type User struct {
	Name              string   `yaml:"name"`
	Sudo              string   `yaml:"sudo,omitempty"`
	Shell             string   `yaml:"shell,omitempty"`
	LockPasswd        bool     `yaml:"lock_passwd"`
	SSHAuthorizedKeys []string `yaml:"ssh_authorized_keys"`
}

// UserData is the cloud-config document consumed by cloud-init on first
// boot.
type UserData struct {
	Users []User `yaml:"users"`
}

// NewUserData returns a [UserData] that creates the given user with
// passwordless sudo and the given SSH authorized keys.
func NewUserData(name string, keys []string) UserData {
	return UserData{
		Users: []User{
			{
				Name:              name,
				Sudo:              "ALL=(ALL) NOPASSWD:ALL",
				Shell:             "/bin/bash",
				SSHAuthorizedKeys: keys,
			},
		},
	}
}

// Render returns the document as cloud-config YAML.
func (u *UserData) Render() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(cloudConfigHeader)

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	err := encoder.Encode(u)
	if err != nil {
		return nil, fmt.Errorf("encode user-data: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
