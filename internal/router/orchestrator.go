// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/model"
)

// Orchestrator routes user input to the chat or image path.
type Orchestrator struct {
	images ImageBackend
	chat   ChatAdapter
	logger *zap.Logger
	now    func() time.Time
}

// New creates an orchestrator over backend using the chat adapter for api.
func New(backend Backend, api string, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		images: backend,
		chat:   NewChatAdapter(api, backend),
		logger: logger.Named("router"),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for image filenames.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Dispatch answers input in the context of conv. The conversation is read,
// never modified; the caller appends turns from the Result. conv may be nil
// for a single-turn request.
func (o *Orchestrator) Dispatch(ctx context.Context, conv *model.Conversation, modelName, input string) (res Result) {
	defer o.recoverInto(&res, "dispatch")

	var prior []model.Turn
	if conv != nil {
		if !conv.Begin() {
			o.logger.Debug("dispatch rejected, request pending", zap.String("conversation", conv.ID))
			return Failure(KindBusy, ErrBusy.Error())
		}
		defer conv.End()
		prior = conv.Turns()
	}

	isImage := catalog.IsImageModel(modelName)
	o.logger.Debug("dispatch",
		zap.String("model", modelName),
		zap.String("adapter", o.chat.Name()),
		zap.Bool("image", isImage),
		zap.Int("prior_turns", len(prior)))

	if isImage {
		return o.generate(ctx, input, modelName, cloud.DefaultImageSize, cloud.DefaultImageSize)
	}

	turns := append(prior, model.NewTurn(model.RoleUser, input))
	text, err := o.chat.Complete(ctx, modelName, turns)
	if err != nil {
		return o.fail("chat", modelName, err)
	}
	return TextResult(text)
}

// Ask is a single-turn dispatch.
func (o *Orchestrator) Ask(ctx context.Context, modelName, question string) Result {
	return o.Dispatch(ctx, nil, modelName, question)
}

// GenerateImage requests an image. Zero dimensions use the default size.
func (o *Orchestrator) GenerateImage(ctx context.Context, prompt, modelName string, width, height int) (res Result) {
	defer o.recoverInto(&res, "image")
	return o.generate(ctx, prompt, modelName, width, height)
}

func (o *Orchestrator) generate(ctx context.Context, prompt, modelName string, width, height int) Result {
	img, err := o.images.GenerateImage(ctx, cloud.ImageRequest{
		Prompt: prompt,
		Model:  modelName,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return o.fail("image", modelName, err)
	}

	o.logger.Info("image generated",
		zap.String("model", img.Model),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Int("bytes", len(img.Data)))

	return ImageResult(&GeneratedImage{
		Filename:    export.ImageFilename(o.now()),
		Data:        img.Data,
		ContentType: img.ContentType,
		Model:       img.Model,
		Width:       img.Width,
		Height:      img.Height,
	})
}

func (o *Orchestrator) fail(path, modelName string, err error) Result {
	res := ResultFromError(err)
	o.logger.Warn("request failed",
		zap.String("path", path),
		zap.String("model", modelName),
		zap.Stringer("kind", res.Kind),
		zap.Error(err))
	return res
}

func (o *Orchestrator) recoverInto(res *Result, op string) {
	if r := recover(); r != nil {
		o.logger.Error("recovered panic", zap.String("op", op), zap.Any("panic", r))
		*res = Failure(KindInternal, fmt.Sprint(r))
	}
}
