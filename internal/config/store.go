// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store owns the live settings and persists them on every change.
// Stored holds what is on disk; Get adds the environment overlay.
type Store struct {
	mu     sync.RWMutex
	fs     afero.Fs
	path   string
	stored Settings
	getenv func(string) string
	logger *zap.Logger
}

// Open loads settings from path. A file that fails to load is logged and
// replaced by the defaults in memory; it is not rewritten until the next
// change.
func Open(fs afero.Fs, path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		fs:     fs,
		path:   path,
		getenv: os.Getenv,
		logger: logger,
	}

	cfg, err := Load(fs, path)
	if err != nil {
		logger.Warn("settings unavailable, using defaults",
			zap.String("path", path),
			zap.Error(err))
		cfg = Default()
	}
	s.stored = *cfg
	return s
}

// WithEnv replaces the environment lookup used for overrides.
func (s *Store) WithEnv(getenv func(string) string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getenv = getenv
	return s
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the effective settings, environment overrides included.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.stored
	cfg.ApplyEnvOverrides(s.getenv)
	return cfg
}

// Stored returns the settings as persisted, without overrides.
func (s *Store) Stored() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stored
}

// Token returns the effective API token.
func (s *Store) Token() string {
	return s.Get().APIToken
}

// Update applies fn to a copy of the stored settings, validates the result
// and persists it. On any error the live settings are left unchanged.
func (s *Store) Update(fn func(*Settings) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.stored
	if err := fn(&next); err != nil {
		return err
	}
	next.fillDefaults()
	if err := next.Validate(); err != nil {
		return err
	}
	if err := s.save(&next); err != nil {
		return err
	}
	s.stored = next
	return nil
}

// Set changes one setting by key and persists it.
func (s *Store) Set(key, value string) error {
	return s.Update(func(cfg *Settings) error {
		return cfg.Set(key, value)
	})
}

// Save writes the stored settings to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.stored
	return s.save(&cfg)
}

func (s *Store) save(cfg *Settings) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	if err := Save(s.fs, s.path, cfg); err != nil {
		return err
	}
	s.logger.Debug("settings saved", zap.String("path", s.path))
	return nil
}
