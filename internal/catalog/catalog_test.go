// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeranaias/pollen/internal/cloud"
)

type fakeLister struct {
	text, image       []cloud.ModelEntry
	textErr, imageErr error
	calls             []string
}

func (f *fakeLister) ListTextModels(ctx context.Context) ([]cloud.ModelEntry, error) {
	f.calls = append(f.calls, "text")
	return f.text, f.textErr
}

func (f *fakeLister) ListImageModels(ctx context.Context) ([]cloud.ModelEntry, error) {
	f.calls = append(f.calls, "image")
	return f.image, f.imageErr
}

func names(models []Model) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.Name
	}
	return out
}

func TestLoadUnion(t *testing.T) {
	lister := &fakeLister{
		text: []cloud.ModelEntry{
			{Name: "openai", Description: "GPT"},
			{Name: "midijourney", IsSpecialized: true},
			{Name: "mistral", InputModalities: []string{"text", "image"}},
		},
		image: []cloud.ModelEntry{
			{Name: "flux"},
		},
	}
	cat := New(lister, nil)

	src := cat.Load(context.Background())

	assert.Equal(t, SourceRemote, src)
	assert.Equal(t, []string{"text", "image"}, lister.calls)
	models := cat.Models()
	assert.Equal(t, []string{"openai", "mistral", "flux"}, names(models))
	assert.Equal(t, "GPT", models[0].Description)
	assert.Equal(t, []string{"text"}, models[0].InputModalities)
	assert.Equal(t, "mistral", models[1].Description)
	assert.Equal(t, []string{"text", "image"}, models[1].InputModalities)
}

func TestLoadTextFailureStillFetchesImages(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lister := &fakeLister{
		textErr: errors.New("connection refused"),
		image:   []cloud.ModelEntry{{Name: "flux"}, {Name: "zimage"}},
	}
	cat := New(lister, zap.New(core))

	src := cat.Load(context.Background())

	assert.Equal(t, SourceRemote, src)
	assert.Equal(t, []string{"text", "image"}, lister.calls)
	assert.Equal(t, []string{"flux", "zimage"}, names(cat.Models()))
	assert.Equal(t, 1, logs.FilterMessage("partial model listing").Len())
}

func TestLoadFailureFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		lister Lister
	}{
		{"both fail", &fakeLister{textErr: errors.New("x"), imageErr: errors.New("y")}},
		{"both empty", &fakeLister{}},
		{"only specialized", &fakeLister{text: []cloud.ModelEntry{{Name: "a", IsSpecialized: true}}}},
		{"nil lister", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			cat := New(tt.lister, zap.New(core))

			src := cat.Load(context.Background())

			assert.Equal(t, SourceBuiltin, src)
			assert.Equal(t, SourceBuiltin, cat.Source())
			models := cat.Models()
			require.Len(t, models, 6)
			assert.Equal(t, []string{"openai", "mistral", "gemini-fast", "qwen-coder", "flux", "turbo"}, names(models))
			assert.Equal(t, 1, logs.Len())
		})
	}
}

func TestLoadAgainstFailingServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := cloud.NewClient(nil).WithBaseURL(server.URL)
	cat := New(client, nil)
	cat.Load(context.Background())

	assert.Len(t, cat.Models(), 6)
}

func TestLoadReplacesWholesale(t *testing.T) {
	lister := &fakeLister{text: []cloud.ModelEntry{{Name: "openai"}}}
	cat := New(lister, nil)
	cat.Load(context.Background())

	before := cat.Models()
	lister.text = []cloud.ModelEntry{{Name: "deepseek"}}
	cat.Load(context.Background())

	assert.Equal(t, []string{"openai"}, names(before))
	assert.Equal(t, []string{"deepseek"}, names(cat.Models()))
}

func TestModelsBeforeLoad(t *testing.T) {
	cat := New(nil, nil)
	assert.Equal(t, SourceNone, cat.Source())
	assert.Len(t, cat.Models(), 6)
}

func TestLookup(t *testing.T) {
	cat := New(&fakeLister{text: []cloud.ModelEntry{{Name: "openai"}, {Name: "Mistral"}}}, nil)
	cat.Load(context.Background())

	m, ok := cat.Lookup("mistral")
	assert.True(t, ok)
	assert.Equal(t, "Mistral", m.Name)

	_, ok = cat.Lookup("gpt-5")
	assert.False(t, ok)
}

func TestFiltered(t *testing.T) {
	lister := &fakeLister{
		text: []cloud.ModelEntry{
			{Name: "openai"},
			{Name: "openai-audio"},
			{Name: "gpt-5"},
			{Name: "mistral"},
		},
		image: []cloud.ModelEntry{
			{Name: "flux"},
			{Name: "flux-pro"},
			{Name: "turbo"},
		},
	}
	cat := New(lister, nil)
	cat.Load(context.Background())

	groups := cat.Filtered(false)
	require.Len(t, groups, 3)
	assert.Equal(t, Text, groups[0].Category)
	assert.Equal(t, []string{"openai", "gpt-5", "mistral"}, names(groups[0].Models))
	assert.Equal(t, Audio, groups[1].Category)
	assert.Equal(t, []string{"openai-audio"}, names(groups[1].Models))
	assert.Equal(t, Images, groups[2].Category)
	assert.Equal(t, []string{"flux", "flux-pro", "turbo"}, names(groups[2].Models))

	free := cat.Filtered(true)
	require.Len(t, free, 2)
	assert.Equal(t, []string{"openai", "mistral"}, names(free[0].Models))
	assert.Equal(t, []string{"flux", "turbo"}, names(free[1].Models))

	// grouping never touches the catalog
	assert.Len(t, cat.Models(), 7)
}
