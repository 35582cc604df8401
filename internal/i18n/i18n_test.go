// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"", English},
		{"en", English},
		{"ru", Russian},
		{"ru-RU", Russian},
		{"en-GB", English},
		{"fr", English},
		{"not a tag", English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("en"))
	assert.True(t, Valid("ru"))
	assert.False(t, Valid("de"))
	assert.False(t, Valid("ru-RU"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range messages[English] {
		_, ok := messages[Russian][key]
		assert.True(t, ok, "russian table missing %q", key)
	}
	for key := range messages[Russian] {
		_, ok := messages[English][key]
		assert.True(t, ok, "english table missing %q", key)
	}
}

func TestTFallbacks(t *testing.T) {
	assert.Equal(t, "Картинки", T(Russian, KeyCategoryImages))
	assert.Equal(t, "Images", T(English, KeyCategoryImages))
	assert.Equal(t, "Images", T(Lang("de"), KeyCategoryImages))
	assert.Equal(t, "missingKey", T(English, Key("missingKey")))
}

func TestTf(t *testing.T) {
	assert.Equal(t, "Chat with openai", Tf(English, KeyChatWith, "openai"))
	assert.Equal(t, "Чат с mistral", Tf(Russian, KeyChatWith, "mistral"))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "07.03.2025, 14:05:09", FormatDateTime(Russian, ts))
	assert.Equal(t, "3/7/2025, 2:05:09 PM", FormatDateTime(English, ts))
}
