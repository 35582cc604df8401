// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n holds the English and Russian message tables.
//
// Every user-facing string goes through T. Unknown languages and unknown
// keys fall back to English.
//
// # Usage
//
//	lang := i18n.Parse(settings.Language)
//	fmt.Println(i18n.T(lang, i18n.KeyThinking))
//	fmt.Println(i18n.FormatDateTime(lang, time.Now()))
package i18n
