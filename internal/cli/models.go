// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// models.go - The model listing command.

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/util"
)

// ModelsData is the JSON form of the models command.
type ModelsData struct {
	Source   string      `json:"source"`
	FreeOnly bool        `json:"free_only"`
	Current  string      `json:"current"`
	Groups   []GroupData `json:"groups"`
}

// GroupData is one category of models.
type GroupData struct {
	Category string      `json:"category"`
	Models   []ModelData `json:"models"`
}

// ModelData is one model entry.
type ModelData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Free        bool   `json:"free"`
}

// handleModels loads the catalog and prints it grouped by category.
// --free and --all override show_free_models_only.
func (r *runner) handleModels(ctx context.Context) error {
	p := NewArgParser(r.args.Rest, "free", "all")

	freeOnly := r.app.Settings().ShowFreeModelsOnly
	if p.BoolFlag("free") {
		freeOnly = true
	}
	if p.BoolFlag("all") {
		freeOnly = false
	}

	source := r.app.LoadModels(ctx)
	groups := r.app.Catalog().Filtered(freeOnly)

	if r.args.JSON {
		return NewJSONResponse("models", ModelsData{
			Source:   string(source),
			FreeOnly: freeOnly,
			Current:  r.app.CurrentModel(),
			Groups:   groupData(groups),
		}).Print(r.env.Stdout)
	}

	r.printGroups(r.env.Stdout, groups)
	if source == catalog.SourceBuiltin && !r.args.Quiet {
		printMuted(r.env.Stderr, "(built-in list: the model listing could not be loaded)")
	}
	return nil
}

func groupData(groups []catalog.Group) []GroupData {
	return lo.Map(groups, func(g catalog.Group, _ int) GroupData {
		return GroupData{
			Category: g.Category.String(),
			Models: lo.Map(g.Models, func(m catalog.Model, _ int) ModelData {
				return ModelData{Name: m.Name, Description: m.Description, Free: m.IsFree()}
			}),
		}
	})
}

// printGroups writes groups with the current model marked. Used by the
// models command and by /models in chat.
func (r *runner) printGroups(w io.Writer, groups []catalog.Group) {
	lang := r.app.Lang()
	current := r.app.CurrentModel()

	width := 0
	for _, g := range groups {
		for _, m := range g.Models {
			width = max(width, util.StringWidth(m.Name))
		}
	}
	free := FreeStyle.Render("[" + i18n.T(lang, i18n.KeyFree) + "]")

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, TitleStyle.Render(g.Category.Label(lang)))
		for _, m := range g.Models {
			marker, name := " ", util.PadRight(m.Name, width)
			if m.Name == current {
				marker, name = "*", CurrentStyle.Render(name)
			}
			line := fmt.Sprintf("%s %s  %s", marker, name, MutedStyle.Render(util.TruncateWidth(m.Description, 48)))
			if m.IsFree() {
				line += " " + free
			}
			fmt.Fprintln(w, line)
		}
	}
}
