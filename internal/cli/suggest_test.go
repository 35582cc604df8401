// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestCommand(t *testing.T) {
	tests := map[string]string{
		"chta":     "chat",
		"asc":      "ask",
		"modles":   "models",
		"confg":    "config",
		"chat":     "",
		"x":        "",
		"deploy":   "",
		"VERSOIN":  "version",
		"settigns": "settings",
	}
	for input, want := range tests {
		assert.Equal(t, want, SuggestCommand(input), input)
	}
}

func TestSuggestSlashCommands(t *testing.T) {
	assert.Equal(t, "/save", suggest("/sav", slashCommands))
	assert.Equal(t, "/history", suggest("/histroy", slashCommands))
	assert.Equal(t, "", suggest("/quit", slashCommands))
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("", ""))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 1, levenshteinDistance("flux", "flu"))
	assert.Equal(t, 2, levenshteinDistance("ab", "ba"))
	assert.Equal(t, 1, levenshteinDistance("модель", "модели"))
}
