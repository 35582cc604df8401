// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/pollen/internal/model"
)

// ParsedTurn is a turn recovered from a rendered note.
type ParsedTurn struct {
	Role    model.Role
	Content string
}

// ParsedDocument is what Parse recovers from a rendered note.
type ParsedDocument struct {
	Title string
	Model string
	Turns []ParsedTurn
}

// Parse reads a note produced by Render. Role headers are recognized by
// their icon, so notes in any language parse the same way. Content is
// returned trimmed.
func Parse(text string) ParsedDocument {
	var doc ParsedDocument
	var current *ParsedTurn
	var body []string
	inHeader := true

	// separated is true when another header follows, so the body ends with
	// the turn separator written by Render.
	flush := func(separated bool) {
		if current == nil {
			return
		}
		current.Content = trimBody(body, separated)
		doc.Turns = append(doc.Turns, *current)
		current = nil
		body = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if role, ok := headerRole(line); ok {
			flush(true)
			inHeader = false
			current = &ParsedTurn{Role: role}
			continue
		}

		if inHeader {
			switch {
			case doc.Title == "" && strings.HasPrefix(line, "# "):
				doc.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			case doc.Model == "" && strings.HasPrefix(line, "**"):
				if _, value, ok := strings.Cut(line, ":** "); ok {
					doc.Model = strings.TrimSpace(value)
				}
			}
			continue
		}
		body = append(body, line)
	}
	flush(false)

	return doc
}

func headerRole(line string) (model.Role, bool) {
	switch {
	case strings.HasPrefix(line, "## "+userIcon+" "):
		return model.RoleUser, true
	case strings.HasPrefix(line, "## "+assistantIcon+" "):
		return model.RoleAssistant, true
	}
	return "", false
}

// trimBody joins body lines. When separated, the turn separator that
// precedes the next header is dropped; the last turn has none.
func trimBody(lines []string, separated bool) string {
	content := strings.TrimSpace(strings.Join(lines, "\n"))
	if !separated {
		return content
	}
	if content == separator {
		return ""
	}
	if strings.HasSuffix(content, "\n"+separator) {
		content = strings.TrimSpace(strings.TrimSuffix(content, "\n"+separator))
	}
	return content
}
