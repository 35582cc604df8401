// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the list of known models and the fixed rules that
// classify them.
//
// Category and tier are never stored. They are recomputed from the model
// name every time with literal lookup tables, so behavior stays identical to
// the tables below even as the remote listing grows new names.
//
// # Key Types
//
//   - Model: Name, description, and input modalities of a remote model
//   - Category: Text, Images, or Audio, derived from the name
//   - Catalog: Loaded model list, replaced wholesale on every Load
//   - Group: One category's models, in load order
//
// # Usage
//
//	cat := catalog.New(client, logger)
//	cat.Load(ctx) // never fails; falls back to the built-in list
//
//	for _, g := range cat.Filtered(settings.ShowFreeModelsOnly) {
//	    fmt.Println(g.Category.Label(lang), len(g.Models))
//	}
package catalog
