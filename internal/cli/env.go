// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// env.go - Process environment and per-invocation wiring.

package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/app"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/config"
	"github.com/jeranaias/pollen/internal/logging"
	"github.com/jeranaias/pollen/internal/storage"
	"github.com/jeranaias/pollen/internal/ui/components"
)

// Env is everything a command touches outside the process.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// Fs holds the config directory (settings, history, logs).
	Fs        afero.Fs
	ConfigDir string

	// VaultFs, when set, replaces the vault_dir setting.
	VaultFs afero.Fs

	// BaseURL, when set, replaces the API endpoint.
	BaseURL string

	// Logger, when set, replaces the logger built from settings.
	Logger *zap.Logger

	// Interactive enables the line editor, spinners and rendered Markdown.
	Interactive bool
	Color       bool
	Width       int
}

// DefaultEnv describes the real process.
func DefaultEnv() Env {
	dir, err := config.ConfigDir()
	if err != nil {
		dir = ".pollen"
	}
	interactive := IsTTY() && IsStdoutTTY()
	return Env{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Fs:          afero.NewOsFs(),
		ConfigDir:   dir,
		Interactive: interactive,
		Color:       colorsEnabled(os.Getenv, IsStdoutTTY()),
		Width:       GetTerminalWidth(),
	}
}

// withDefaults fills unset fields so a partial Env is usable.
func (e Env) withDefaults() Env {
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.Stdout == nil {
		e.Stdout = io.Discard
	}
	if e.Stderr == nil {
		e.Stderr = io.Discard
	}
	if e.Getenv == nil {
		e.Getenv = func(string) string { return "" }
	}
	if e.Fs == nil {
		e.Fs = afero.NewMemMapFs()
	}
	if e.ConfigDir == "" {
		e.ConfigDir = ".pollen"
	}
	if e.Width <= 0 {
		e.Width = 80
	}
	return e
}

func (e Env) settingsPath() string {
	return filepath.Join(e.ConfigDir, "config.toml")
}

func (e Env) historyPath() string {
	return filepath.Join(e.ConfigDir, "chat_history")
}

func (e Env) waiter() components.Waiter {
	return components.Waiter{Out: e.Stderr, Interactive: e.Interactive}
}

// =============================================================================
// RUNNER
// =============================================================================

// runner is the wiring for one invocation.
type runner struct {
	env    Env
	args   Args
	logger *zap.Logger
	client *cloud.Client
	app    *app.App
}

func newRunner(env Env, args Args) (*runner, error) {
	logger := env.Logger
	if logger == nil {
		var err error
		logger, err = buildLogger(env, args)
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
	}

	store := config.Open(env.Fs, env.settingsPath(), logger.Named("config")).WithEnv(env.Getenv)
	settings := store.Get()

	client := cloud.NewClient(store.Token).WithLogger(logger)
	if env.BaseURL != "" {
		client = client.WithBaseURL(env.BaseURL)
	}

	var vault *storage.Vault
	if env.VaultFs != nil {
		vault = storage.NewVaultWithFs(env.VaultFs, logger)
	} else {
		vault = storage.NewVault(settings.VaultDir, logger)
	}

	a := app.New(app.Options{
		Store:  store,
		Client: client,
		Vault:  vault,
		Logger: logger,
	})
	if args.Model != "" {
		a.SetCurrentModel(args.Model)
	}

	logger.Debug("runtime ready",
		zap.String("config", store.Path()),
		zap.String("vault", settings.VaultDir),
		zap.String("api", client.BaseURL()),
		zap.String("model", a.CurrentModel()),
		zap.String("chat_api", settings.ChatAPI))

	return &runner{env: env, args: args, logger: logger, client: client, app: a}, nil
}

// buildLogger reads the log section of the settings before the store
// exists, so that settings load failures are themselves logged.
func buildLogger(env Env, args Args) (*zap.Logger, error) {
	cfg := config.Default().Log
	if s, err := config.Load(env.Fs, env.settingsPath()); err == nil {
		cfg = s.Log
	}
	if cfg.File.Filename == "" {
		cfg.File.Filename = filepath.Join(env.ConfigDir, "logs", "pollen.log")
	}
	if args.Verbose {
		cfg.Level = "debug"
		cfg.Format = "console"
		cfg.Output = "both"
	}
	return logging.New(cfg)
}

func (r *runner) close() {
	_ = r.logger.Sync()
}
