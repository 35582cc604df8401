// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/model"
)

const (
	userIcon      = "👤"
	assistantIcon = "🤖"
	separator     = "---"
)

// ErrNoTurns is returned when exporting an empty conversation.
var ErrNoTurns = errors.New("conversation has no messages")

// Exporter converts a document to a file format.
type Exporter interface {
	Export(doc Document) ([]byte, error)
}

// Document is everything needed to render one conversation note.
type Document struct {
	Title string
	Model string
	Turns []model.Turn
	Date  time.Time
	Lang  i18n.Lang
}

// DefaultTitle is used when a document has no title.
func DefaultTitle(lang i18n.Lang) string {
	return i18n.T(lang, i18n.KeyAIChatTitle)
}

// ResolvedTitle returns the title, or the localized default when empty.
func (d Document) ResolvedTitle() string {
	if t := strings.TrimSpace(d.Title); t != "" {
		return t
	}
	return DefaultTitle(d.Lang)
}

// Filename returns "<title> <timestamp>.md".
func (d Document) Filename() string {
	return ConversationFilename(d.ResolvedTitle(), d.Date)
}

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter renders documents as Markdown notes.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export renders doc. An empty conversation is rejected.
func (e *MarkdownExporter) Export(doc Document) ([]byte, error) {
	if len(doc.Turns) == 0 {
		return nil, ErrNoTurns
	}
	return []byte(Render(doc)), nil
}

// Render produces the note text. It has no side effects and reads no clock.
func Render(doc Document) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", singleLine(doc.ResolvedTitle())))
	sb.WriteString(fmt.Sprintf("**%s:** %s\n", i18n.T(doc.Lang, i18n.KeyModel), doc.Model))
	sb.WriteString(fmt.Sprintf("**%s:** %s\n\n", i18n.T(doc.Lang, i18n.KeyDate), i18n.FormatDateTime(doc.Lang, doc.Date)))
	sb.WriteString(separator + "\n\n")

	for i, turn := range doc.Turns {
		sb.WriteString(fmt.Sprintf("## %s\n\n", roleHeader(doc.Lang, turn.Role)))
		sb.WriteString(turn.Content)
		sb.WriteString("\n\n")

		// separator between turns, not after the last
		if i < len(doc.Turns)-1 {
			sb.WriteString(separator + "\n\n")
		}
	}

	return sb.String()
}

// roleHeader returns the icon and localized label for a role.
func roleHeader(lang i18n.Lang, role model.Role) string {
	if role == model.RoleUser {
		return userIcon + " " + i18n.T(lang, i18n.KeyDocUser)
	}
	return assistantIcon + " " + i18n.T(lang, i18n.KeyAI)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
