// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title is used for command titles and group headers.
	Title = lipgloss.NewStyle().Bold(true).Foreground(Pollen)

	// Section is used for category headers in listings.
	Section = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).MarginTop(1)

	// Label is used for left-hand field names.
	Label = lipgloss.NewStyle().Foreground(TextSecondary)

	// Value is used for plain values.
	Value = lipgloss.NewStyle().Foreground(TextPrimary)

	// Muted is used for descriptions and hints.
	Muted = lipgloss.NewStyle().Foreground(TextMuted)

	// Success is used for confirmations.
	Success = lipgloss.NewStyle().Bold(true).Foreground(Emerald)

	// Error is used for failures.
	Error = lipgloss.NewStyle().Bold(true).Foreground(Rose)

	// Warning is used for non-fatal problems.
	Warning = lipgloss.NewStyle().Foreground(Amber)

	// UserLabel prefixes user turns in the chat transcript.
	UserLabel = lipgloss.NewStyle().Bold(true).Foreground(Cyan)

	// AssistantLabel prefixes assistant turns in the chat transcript.
	AssistantLabel = lipgloss.NewStyle().Bold(true).Foreground(Purple)

	// FreeBadge marks free-tier models.
	FreeBadge = lipgloss.NewStyle().Foreground(Emerald)

	// Current marks the selected model.
	Current = lipgloss.NewStyle().Bold(true).Foreground(Pollen)
)
