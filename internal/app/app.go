// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/catalog"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/config"
	"github.com/jeranaias/pollen/internal/export"
	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/logging"
	"github.com/jeranaias/pollen/internal/router"
	"github.com/jeranaias/pollen/internal/storage"
)

// ErrSavingDisabled is returned when save_to_notes is off.
var ErrSavingDisabled = errors.New("saving conversations is disabled")

// Options configures New.
type Options struct {
	Store  *config.Store
	Client *cloud.Client
	Vault  *storage.Vault
	Logger *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// App is the explicit application state.
type App struct {
	store        *config.Store
	catalog      *catalog.Catalog
	orchestrator *router.Orchestrator
	vault        *storage.Vault
	exporter     export.Exporter
	logger       *zap.Logger
	now          func() time.Time

	mu           sync.RWMutex
	currentModel string
}

// New wires the application state. The current model starts as the
// configured default.
func New(opts Options) *App {
	logger := logging.OrNop(opts.Logger)
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	settings := opts.Store.Get()

	return &App{
		store:        opts.Store,
		catalog:      catalog.New(opts.Client, logger),
		orchestrator: router.New(opts.Client, settings.ChatAPI, logger).WithClock(now),
		vault:        opts.Vault,
		exporter:     export.NewMarkdownExporter(),
		logger:       logger.Named("app"),
		now:          now,
		currentModel: settings.DefaultModel,
	}
}

// Settings returns the effective settings.
func (a *App) Settings() config.Settings {
	return a.store.Get()
}

// Store returns the settings store.
func (a *App) Store() *config.Store {
	return a.store
}

// Lang returns the interface language.
func (a *App) Lang() i18n.Lang {
	return a.Settings().Lang()
}

// Catalog returns the model catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Vault returns the vault.
func (a *App) Vault() *storage.Vault {
	return a.vault
}

// LoadModels refreshes the catalog. It never fails.
func (a *App) LoadModels(ctx context.Context) catalog.Source {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.catalog.Load(ctx)
}

// CurrentModel returns the model used for chat.
func (a *App) CurrentModel() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentModel
}

// SetCurrentModel selects the chat model and reports whether the catalog
// knows it. Unknown names are still accepted.
func (a *App) SetCurrentModel(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	_, known := a.catalog.Lookup(name)

	a.mu.Lock()
	a.currentModel = name
	a.mu.Unlock()

	a.logger.Debug("model selected", zap.String("model", name), zap.Bool("known", known))
	return known
}

// withTimeout applies request_timeout_secs when set.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := a.Settings().RequestTimeout(); d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// ParseSize parses an image dimension. Anything that is not a positive
// integer becomes the default size.
func ParseSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return cloud.DefaultImageSize
	}
	return n
}
