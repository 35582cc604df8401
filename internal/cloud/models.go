// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// ModelKind selects which model listing to fetch.
type ModelKind string

const (
	KindText  ModelKind = "text"
	KindImage ModelKind = "image"
)

// ModelEntry is one entry of a model listing. Entries without a name are
// dropped while parsing; everything else is passed through as-is.
type ModelEntry struct {
	Name            string
	Description     string
	InputModalities []string
	IsSpecialized   bool
}

// ListModels fetches GET /<kind>/models.
func (c *Client) ListModels(ctx context.Context, kind ModelKind) ([]ModelEntry, error) {
	body, _, err := c.get(ctx, fmt.Sprintf("%s/%s/models", c.baseURL, kind))
	if err != nil {
		return nil, err
	}
	return parseModelList(body)
}

// ListTextModels fetches the text model listing.
func (c *Client) ListTextModels(ctx context.Context) ([]ModelEntry, error) {
	return c.ListModels(ctx, KindText)
}

// ListImageModels fetches the image model listing.
func (c *Client) ListImageModels(ctx context.Context) ([]ModelEntry, error) {
	return c.ListModels(ctx, KindImage)
}

// parseModelList accepts a JSON array of objects. Fields are read loosely:
// wrong-typed optional fields are treated as absent.
func parseModelList(body []byte) ([]ModelEntry, error) {
	if !gjson.ValidBytes(body) {
		return nil, unexpected("model list is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, unexpected("model list is not an array")
	}

	entries := make([]ModelEntry, 0)
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		name := item.Get("name")
		if name.Type != gjson.String || name.Str == "" {
			return true
		}

		entry := ModelEntry{
			Name:          name.Str,
			IsSpecialized: item.Get("is_specialized").Type == gjson.True,
		}
		if desc := item.Get("description"); desc.Type == gjson.String {
			entry.Description = desc.Str
		}
		if mods := item.Get("input_modalities"); mods.IsArray() {
			for _, m := range mods.Array() {
				if m.Type == gjson.String {
					entry.InputModalities = append(entry.InputModalities, m.Str)
				}
			}
		}
		entries = append(entries, entry)
		return true
	})

	return entries, nil
}
