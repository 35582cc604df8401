// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jeranaias/pollen/internal/i18n"
)

// =============================================================================
// CATEGORY
// =============================================================================

// Category is the kind of output a model produces.
type Category int

const (
	Text Category = iota
	Images
	Audio
)

// String returns the English name of the category.
func (c Category) String() string {
	switch c {
	case Text:
		return "Text"
	case Images:
		return "Images"
	case Audio:
		return "Audio"
	default:
		return "Unknown"
	}
}

// Label returns the localized category label.
func (c Category) Label(lang i18n.Lang) string {
	switch c {
	case Images:
		return i18n.T(lang, i18n.KeyCategoryImages)
	case Audio:
		return i18n.T(lang, i18n.KeyCategoryAudio)
	default:
		return i18n.T(lang, i18n.KeyCategoryText)
	}
}

// =============================================================================
// CLASSIFICATION TABLES
// =============================================================================

var (
	// imageSubstrings classify a name as Images when contained in it.
	imageSubstrings = []string{"flux", "turbo", "seedream", "nanobanana", "zimage", "kontext", "seedance"}

	// imageExact classify a name as Images only on exact match.
	imageExact = []string{"gptimage", "veo"}

	// audioSubstrings are checked after the image rules.
	audioSubstrings = []string{"audio", "tts", "speech", "midijourney"}

	// freeModels is the free-tier allow-list. Membership is exact.
	freeModels = []string{
		"openai", "openai-fast", "qwen-coder", "mistral", "gemini-fast", "nova-micro", "deepseek",
		"flux", "turbo", "gptimage", "kontext", "seedream", "nanobanana", "zimage",
	}
)

// Classify maps a model name to its category. It is total: anything that
// matches no image or audio rule is Text.
func Classify(name string) Category {
	n := strings.ToLower(name)
	contains := func(token string) bool { return strings.Contains(n, token) }

	if lo.Contains(imageExact, n) || lo.ContainsBy(imageSubstrings, contains) {
		return Images
	}
	if lo.ContainsBy(audioSubstrings, contains) {
		return Audio
	}
	return Text
}

// IsImageModel reports whether name classifies as Images.
func IsImageModel(name string) bool {
	return Classify(name) == Images
}

// IsFree reports whether the lower-cased name is on the free-tier allow-list.
func IsFree(name string) bool {
	return lo.Contains(freeModels, strings.ToLower(name))
}
