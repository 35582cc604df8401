// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across packages.
//
// # Key Functions
//
//   - AtomicWriteFile: Crash-safe file replacement on an afero.Fs
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - StringWidth, PadRight: Display-width aware padding for tables
//
// # Usage
//
//	err := util.AtomicWriteFile(afero.NewOsFs(), path, data, 0600)
//	cell := util.PadRight("Картинки", 12)
package util
