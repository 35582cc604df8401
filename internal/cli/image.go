// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// image.go - The image generation command.

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/app"
	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/router"
	"github.com/jeranaias/pollen/internal/ui/components"
	"github.com/jeranaias/pollen/internal/util"
)

// ImageData is the JSON form of the image command.
type ImageData struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Path   string `json:"path"`
	Embed  string `json:"embed"`
}

// ImageModelData is one entry of image --list-models in JSON mode.
type ImageModelData struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Default bool   `json:"default"`
}

// handleImage generates an image and saves it under images_folder.
func (r *runner) handleImage(ctx context.Context) error {
	p := NewArgParser(r.args.Rest, "list-models")
	if p.BoolFlag("list-models") {
		return r.listImageModels()
	}

	lang := r.app.Lang()
	prompt := strings.TrimSpace(p.Rest(0))
	if prompt == "" {
		return NewUsageError("%s", i18n.T(lang, i18n.KeyEnterPrompt))
	}
	if !r.client.HasToken() {
		r.logger.Debug("image skipped, no token")
		return r.failResult(router.ResultFromError(cloud.ErrTokenRequired))
	}

	modelName := r.args.Model
	if modelName == "" {
		modelName = r.app.Settings().DefaultImageModel
	}
	width := app.ParseSize(p.Flag("width", "w"))
	height := app.ParseSize(p.Flag("height", "h"))

	r.logger.Info("image requested",
		zap.String("model", modelName),
		zap.Int("width", width),
		zap.Int("height", height))

	out := components.Wait(ctx, r.env.waiter(), i18n.T(lang, i18n.KeyGenerating), func(ctx context.Context) app.ImageOutcome {
		return r.app.GenerateImage(ctx, prompt, modelName, width, height)
	})
	if !out.Result.Success {
		return r.failResult(out.Result)
	}

	data := ImageData{
		Prompt: prompt,
		Model:  modelName,
		Width:  width,
		Height: height,
		Path:   out.Path,
		Embed:  export.EmbedLink(out.Path),
	}
	if r.args.JSON {
		return NewJSONResponse("image", data).Print(r.env.Stdout)
	}

	if !r.args.Quiet {
		printSuccess(r.env.Stderr, "%s: %s", i18n.T(lang, i18n.KeyImageSaved), data.Path)
	}
	fmt.Fprintln(r.env.Stdout, data.Embed)
	return nil
}

// listImageModels prints the fixed image model choices.
func (r *runner) listImageModels() error {
	lang := r.app.Lang()
	def := r.app.Settings().DefaultImageModel

	entries := lo.Map(catalog.ImageChoices, func(c catalog.ImageChoice, _ int) ImageModelData {
		return ImageModelData{Name: c.Name, Label: c.Label(lang), Default: c.Name == def}
	})
	if r.args.JSON {
		return NewJSONResponse("image", entries).Print(r.env.Stdout)
	}

	fmt.Fprintln(r.env.Stdout, TitleStyle.Render(i18n.T(lang, i18n.KeyDefaultImageModel)))
	for _, e := range entries {
		line := fmt.Sprintf("  %s %s", util.PadRight(e.Name, 12), MutedStyle.Render(e.Label))
		if e.Default {
			line = fmt.Sprintf("* %s %s", CurrentStyle.Render(util.PadRight(e.Name, 12)), MutedStyle.Render(e.Label))
		}
		fmt.Fprintln(r.env.Stdout, line)
	}
	return nil
}
