// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for the pollen commands.
//
// Colors are switched off by Run through the lipgloss color profile, so
// these styles render as plain text when NO_COLOR is set or stdout is not
// a terminal.

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/pollen/internal/ui/styles"
)

var (
	TitleStyle     = styles.Title
	SectionStyle   = styles.Section
	LabelStyle     = styles.Label.Width(22)
	ValueStyle     = styles.Value
	MutedStyle     = styles.Muted
	SuccessStyle   = styles.Success
	ErrorStyle     = styles.Error
	WarningStyle   = styles.Warning
	UserStyle      = styles.UserLabel
	AssistantStyle = styles.AssistantLabel
	FreeStyle      = styles.FreeBadge
	CurrentStyle   = styles.Current
)

// printSuccess writes a confirmation line.
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

// printWarning writes a non-fatal problem.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// printMuted writes a hint.
func printMuted(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf(format, args...)))
}

// printField writes an aligned label/value pair.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s%s\n", LabelStyle.Render(label), ValueStyle.Render(value))
}
