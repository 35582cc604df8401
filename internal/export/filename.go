// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"
	"time"
)

const (
	// timestampLayout is ISO 8601 to the second with ':' already replaced.
	timestampLayout = "2006-01-02T15-04-05"

	maxTitleRunes = 100
)

// Timestamp formats t in UTC for use in filenames.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ConversationFilename returns "<title> <timestamp>.md". The title is made
// filesystem-safe; the result never contains a colon.
func ConversationFilename(title string, t time.Time) string {
	return sanitizeFilename(title) + " " + Timestamp(t) + ".md"
}

// ImageFilename returns "ai-image-<timestamp>.png".
func ImageFilename(t time.Time) string {
	return "ai-image-" + Timestamp(t) + ".png"
}

// WikiLink returns a vault link to path.
func WikiLink(path string) string {
	return "[[" + path + "]]"
}

// EmbedLink returns a vault embed of path.
func EmbedLink(path string) string {
	return "!" + WikiLink(path)
}

// sanitizeFilename replaces characters that are invalid in filenames on
// Windows or Unix. Spaces are kept.
func sanitizeFilename(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > maxTitleRunes {
		runes = runes[:maxTitleRunes]
	}

	result := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			result = append(result, '-')
		case r == '\t' || r == '\n' || r == '\r':
			result = append(result, ' ')
		case r < 32 || r == 127:
			result = append(result, '-')
		default:
			result = append(result, r)
		}
	}

	out := strings.Trim(strings.TrimSpace(string(result)), ".")
	if out == "" {
		return "chat"
	}
	return out
}
