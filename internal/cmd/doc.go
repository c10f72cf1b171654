// SPDX-FileCopyrightText: 2026 The isorun Authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI entry points for isorun and isorun-seed. It
// handles flag parsing, error handling and output handling.
package cmd
