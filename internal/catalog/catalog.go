// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/logging"
)

// Model is a remote model. The name is the only key; there is no other id.
type Model struct {
	Name            string
	Description     string
	InputModalities []string
}

// Category returns the model's category.
func (m Model) Category() Category {
	return Classify(m.Name)
}

// IsFree reports whether the model is on the free tier.
func (m Model) IsFree() bool {
	return IsFree(m.Name)
}

// Source tells where the current model list came from.
type Source string

const (
	SourceNone    Source = "none"
	SourceRemote  Source = "remote"
	SourceBuiltin Source = "builtin"
)

// Lister fetches the two remote model listings.
type Lister interface {
	ListTextModels(ctx context.Context) ([]cloud.ModelEntry, error)
	ListImageModels(ctx context.Context) ([]cloud.ModelEntry, error)
}

// errEmptyListing marks a listing that parsed but held no usable entries.
var errEmptyListing = errors.New("no usable models in listing")

// Catalog holds the loaded model list. The list is replaced wholesale by
// Load and never mutated in place.
type Catalog struct {
	lister Lister
	logger *zap.Logger

	mu     sync.RWMutex
	models []Model
	source Source
}

// New creates an empty catalog. Call Load before use; until then Models
// returns the built-in list.
func New(lister Lister, logger *zap.Logger) *Catalog {
	return &Catalog{
		lister: lister,
		logger: logging.OrNop(logger).Named("catalog"),
		source: SourceNone,
	}
}

// Load fetches the text and image listings one after the other. Each fetch
// is independent: a failed text fetch does not stop the image fetch. When
// both together yield no usable model, the built-in list is installed.
// Failures are logged and never returned.
func (c *Catalog) Load(ctx context.Context) Source {
	var all []Model
	var errs error

	if c.lister == nil {
		errs = errors.New("no model lister configured")
	} else {
		text, err := c.fetch(ctx, "text", c.lister.ListTextModels)
		errs = multierr.Append(errs, err)
		all = append(all, text...)

		image, err := c.fetch(ctx, "image", c.lister.ListImageModels)
		errs = multierr.Append(errs, err)
		all = append(all, image...)
	}

	if len(all) == 0 {
		c.logger.Warn("model listing unavailable, using built-in models", zap.Error(errs))
		c.replace(DefaultModels(), SourceBuiltin)
		return SourceBuiltin
	}

	if errs != nil {
		c.logger.Warn("partial model listing", zap.Error(errs))
	}
	c.logger.Debug("models loaded", zap.Int("count", len(all)))
	c.replace(all, SourceRemote)
	return SourceRemote
}

// fetch runs one listing call and normalizes its entries.
func (c *Catalog) fetch(ctx context.Context, kind string, list func(context.Context) ([]cloud.ModelEntry, error)) ([]Model, error) {
	entries, err := list(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s models: %w", kind, err)
	}
	models := normalize(entries)
	if len(models) == 0 {
		return nil, fmt.Errorf("%s models: %w", kind, errEmptyListing)
	}
	return models, nil
}

// normalize drops specialized entries and fills the optional fields.
func normalize(entries []cloud.ModelEntry) []Model {
	kept := lo.Reject(entries, func(e cloud.ModelEntry, _ int) bool {
		return e.IsSpecialized || e.Name == ""
	})
	return lo.Map(kept, func(e cloud.ModelEntry, _ int) Model {
		m := Model{
			Name:            e.Name,
			Description:     e.Description,
			InputModalities: e.InputModalities,
		}
		if m.Description == "" {
			m.Description = m.Name
		}
		if len(m.InputModalities) == 0 {
			m.InputModalities = []string{"text"}
		}
		return m
	})
}

func (c *Catalog) replace(models []Model, source Source) {
	c.mu.Lock()
	c.models = models
	c.source = source
	c.mu.Unlock()
}

// Source returns where the current list came from.
func (c *Catalog) Source() Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Models returns a copy of the current list in load order.
func (c *Catalog) Models() []Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.models == nil {
		return DefaultModels()
	}
	out := make([]Model, len(c.models))
	copy(out, c.models)
	return out
}

// Lookup finds a model by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Model, bool) {
	return lo.Find(c.Models(), func(m Model) bool {
		return strings.EqualFold(m.Name, name)
	})
}

// =============================================================================
// GROUPING
// =============================================================================

// Group is one category's models in load order.
type Group struct {
	Category Category
	Models   []Model
}

// Filtered returns the models, optionally restricted to the free tier,
// grouped by category. Groups appear in order of first occurrence. The
// catalog itself is not modified.
func (c *Catalog) Filtered(freeOnly bool) []Group {
	return GroupModels(c.Models(), freeOnly)
}

// GroupModels groups models by category, optionally keeping only free ones.
func GroupModels(models []Model, freeOnly bool) []Group {
	if freeOnly {
		models = lo.Filter(models, func(m Model, _ int) bool { return IsFree(m.Name) })
	}
	categoryOf := func(m Model) Category { return Classify(m.Name) }

	order := lo.Uniq(lo.Map(models, func(m Model, _ int) Category { return categoryOf(m) }))
	grouped := lo.GroupBy(models, categoryOf)

	return lo.Map(order, func(cat Category, _ int) Group {
		return Group{Category: cat, Models: grouped[cat]}
	})
}
