// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported interface language.
type Lang string

const (
	English Lang = "en"
	Russian Lang = "ru"
)

// Supported lists the languages in matcher order. English is the fallback.
var Supported = []Lang{English, Russian}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
})

// Parse maps a language tag ("ru", "ru-RU", "en_US.UTF-8") onto a supported
// language. Anything unrecognized becomes English.
func Parse(s string) Lang {
	if s == "" {
		return English
	}
	_, idx := language.MatchStrings(matcher, s)
	if idx < 0 || idx >= len(Supported) {
		return English
	}
	return Supported[idx]
}

// Valid reports whether s names a supported language exactly.
func Valid(s string) bool {
	for _, l := range Supported {
		if string(l) == s {
			return true
		}
	}
	return false
}

// T returns the message for key in lang.
func T(lang Lang, key Key) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[English][key]; ok {
		return msg
	}
	return string(key)
}

// Tf formats the message for key with args.
func Tf(lang Lang, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// FormatDateTime renders t the way the language writes local date and time.
func FormatDateTime(lang Lang, t time.Time) string {
	switch lang {
	case Russian:
		return t.Format("02.01.2006, 15:04:05")
	default:
		return t.Format("1/2/2006, 3:04:05 PM")
	}
}
