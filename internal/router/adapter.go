// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/model"
)

// Chat API versions understood by NewChatAdapter.
const (
	APIOpenAI = "openai"
	APILegacy = "legacy"
)

var errNoUserTurn = errors.New("conversation has no user turn")

// ChatBackend is the remote text API.
type ChatBackend interface {
	ChatCompletion(ctx context.Context, model string, messages []cloud.Message) (*cloud.ChatResponse, error)
	LegacyText(ctx context.Context, model, prompt string) (string, error)
}

// ImageBackend is the remote image API.
type ImageBackend interface {
	GenerateImage(ctx context.Context, req cloud.ImageRequest) (*cloud.Image, error)
}

// Backend is everything the orchestrator calls. *cloud.Client satisfies it.
type Backend interface {
	ChatBackend
	ImageBackend
}

// ChatAdapter turns a turn history into an answer for one API version.
type ChatAdapter interface {
	Name() string
	Complete(ctx context.Context, modelName string, turns []model.Turn) (string, error)
}

// NewChatAdapter returns the adapter for api. Unknown values use openai.
func NewChatAdapter(api string, backend ChatBackend) ChatAdapter {
	if api == APILegacy {
		return legacyAdapter{backend: backend}
	}
	return openAIAdapter{backend: backend}
}

// ============================================================================
// OPENAI
// ============================================================================

type openAIAdapter struct {
	backend ChatBackend
}

func (a openAIAdapter) Name() string { return APIOpenAI }

// Complete sends every turn, in order.
func (a openAIAdapter) Complete(ctx context.Context, modelName string, turns []model.Turn) (string, error) {
	messages := lo.Map(turns, func(t model.Turn, _ int) cloud.Message {
		return cloud.Message{Role: t.Role.String(), Content: t.Content}
	})

	resp, err := a.backend.ChatCompletion(ctx, modelName, messages)
	if err != nil {
		return "", err
	}
	content, ok := resp.Content()
	if !ok {
		return "", fmt.Errorf("%w: no choices[0].message.content", cloud.ErrUnexpectedResponse)
	}
	return content, nil
}

// ============================================================================
// LEGACY
// ============================================================================

type legacyAdapter struct {
	backend ChatBackend
}

func (a legacyAdapter) Name() string { return APILegacy }

// Complete collapses the history to the last user turn.
func (a legacyAdapter) Complete(ctx context.Context, modelName string, turns []model.Turn) (string, error) {
	last, _, ok := lo.FindLastIndexOf(turns, func(t model.Turn) bool {
		return t.IsUser()
	})
	if !ok {
		return "", errNoUserTurn
	}
	return a.backend.LegacyText(ctx, modelName, last.Content)
}
