// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"github.com/jeranaias/pollen/internal/i18n"
)

// DefaultModels returns the built-in list used whenever the remote listing
// cannot be loaded. A fresh slice is returned on every call.
func DefaultModels() []Model {
	return []Model{
		{Name: "openai", Description: "OpenAI GPT-5 Mini", InputModalities: []string{"text"}},
		{Name: "mistral", Description: "Mistral Small", InputModalities: []string{"text"}},
		{Name: "gemini-fast", Description: "Gemini Flash Lite", InputModalities: []string{"text"}},
		{Name: "qwen-coder", Description: "Qwen Coder", InputModalities: []string{"text"}},
		{Name: "flux", Description: "Flux Image Generator", InputModalities: []string{"text"}},
		{Name: "turbo", Description: "Turbo Image (Fast)", InputModalities: []string{"text"}},
	}
}

// ImageChoice is one entry of the fixed image-model picker.
type ImageChoice struct {
	Name  string
	label i18n.Key
}

// Label returns the localized label.
func (c ImageChoice) Label(lang i18n.Lang) string {
	return i18n.T(lang, c.label)
}

// ImageChoices is the fixed image-model picker, default first.
var ImageChoices = []ImageChoice{
	{Name: "zimage", label: i18n.KeyImageModelZimage},
	{Name: "flux", label: i18n.KeyImageModelFlux},
	{Name: "turbo", label: i18n.KeyImageModelTurbo},
	{Name: "gptimage", label: i18n.KeyImageModelGPT},
	{Name: "kontext", label: i18n.KeyImageModelKontext},
	{Name: "seedream", label: i18n.KeyImageModelSeeDream},
	{Name: "nanobanana", label: i18n.KeyImageModelNanobanana},
}
