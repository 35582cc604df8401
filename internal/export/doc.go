// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders conversations as Markdown notes and names the files
// they are saved under.
//
// Rendering is deterministic: the same turns, title, model, language, and
// date always produce the same bytes. Filenames carry a UTC timestamp to the
// second with colons replaced by hyphens, so they sort lexically and are
// safe on every file system.
//
// # Document Layout
//
//	# <title>
//
//	**Model:** <model>
//	**Date:** <localized date>
//
//	---
//
//	## 👤 User
//
//	<content>
//
//	---
//
//	## 🤖 AI
//
//	<content>
//
// # Usage
//
//	doc := export.Document{Title: "Chat with openai", Model: "openai", Turns: turns, Date: now, Lang: i18n.English}
//	data, _ := export.NewMarkdownExporter().Export(doc)
//	name := doc.Filename()
package export
