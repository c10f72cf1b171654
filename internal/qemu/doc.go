// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu composes and runs QEMU system virtualization commands for
// booting installer and live images. It expects the required qemu-system
// binary to be present on the system.
//
// The central type is [CommandSpec]. It is constructed once from parsed CLI
// flags, validated once and compiled into the ordered argument list for the
// qemu process. The argument list is a pure function of the spec, so equal
// specs always yield equal command lines.
package qemu
