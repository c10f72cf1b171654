// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package firmware locates OVMF UEFI firmware images and stages a writable
// per-instance copy of the NVRAM vars template.
//
// The code image is read-only and shared between instances. The vars
// template must be copied for each VM, since the guest writes its UEFI
// variables into it.
package firmware
