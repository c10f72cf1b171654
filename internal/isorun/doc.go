// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package isorun ties the pieces together: it validates the boot image
// paths, stages UEFI firmware when needed and runs the QEMU command.
package isorun
