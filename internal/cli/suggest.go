// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Typo correction for commands, slash commands and model names.
package cli

import (
	"strings"
)

// validCommands lists the top-level commands and their aliases.
var validCommands = []string{
	"chat",
	"ask",
	"image",
	"models",
	"config",
	"version",
	"help",
	// Aliases
	"c",        // chat
	"q",        // ask
	"img",      // image
	"m",        // models
	"list",     // models
	"settings", // config
}

// slashCommands lists the chat REPL commands.
var slashCommands = []string{
	"/model",
	"/models",
	"/save",
	"/clear",
	"/history",
	"/help",
	"/quit",
	"/exit",
}

// SuggestCommand returns the closest top-level command, or "".
func SuggestCommand(input string) string {
	return suggest(input, validCommands)
}

// suggest returns the candidate closest to input within an edit distance
// that grows with the input length, or "" if none is close enough or input
// already matches exactly.
func suggest(input string, candidates []string) string {
	input = strings.ToLower(input)

	// very short inputs are likely intentional
	if len(input) < 2 {
		return ""
	}

	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1
	for _, cand := range candidates {
		distance := levenshteinDistance(input, strings.ToLower(cand))
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cand
		}
	}

	return bestMatch
}

// levenshteinDistance is the minimum number of single-rune insertions,
// deletions or substitutions turning s1 into s2.
func levenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// two rows instead of the full matrix
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
