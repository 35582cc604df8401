// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the pollen terminal palette and the shared
// lipgloss styles. All colors are AdaptiveColor so light and dark
// terminals both stay readable.
package styles
