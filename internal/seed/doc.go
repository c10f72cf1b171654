// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seed builds cloud-init seed images.
//
// A seed image is a small read-only ISO9660 image with volume id "cidata"
// carrying the cloud-init user-data and meta-data files. A guest's
// first-boot provisioning agent picks it up from the attached optical
// drive.
//
// The user-data grants SSH access for a single user, using the public keys
// held by the running ssh-agent or read from authorized_keys files.
package seed
