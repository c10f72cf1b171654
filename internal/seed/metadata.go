// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package seed

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MetaData is the cloud-init meta-data document. The instance id changes
// with every seed, so cloud-init reprovisions on each fresh boot.
type MetaData struct {
	InstanceID    string `yaml:"instance-id"`
	LocalHostname string `yaml:"local-hostname"`
}

// NewMetaData returns a [MetaData] with a random instance id and the given
// guest hostname.
func NewMetaData(hostname string) MetaData {
	return MetaData{
		InstanceID:    "iid-" + uuid.NewString(),
		LocalHostname: hostname,
	}
}

// Render returns the document as YAML.
func (m *MetaData) Render() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode meta-data: %w", err)
	}

	return data, nil
}
