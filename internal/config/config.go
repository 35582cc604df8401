// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/jeranaias/pollen/internal/i18n"
	"github.com/jeranaias/pollen/internal/logging"
	"github.com/jeranaias/pollen/internal/util"
)

// Chat API versions.
const (
	ChatAPIOpenAI = "openai"
	ChatAPILegacy = "legacy"
)

// Settings is the full user configuration.
type Settings struct {
	DefaultModel       string `toml:"default_model" json:"default_model"`
	SaveToNotes        bool   `toml:"save_to_notes" json:"save_to_notes"`
	NotesFolder        string `toml:"notes_folder" json:"notes_folder"`
	ImagesFolder       string `toml:"images_folder" json:"images_folder"`
	APIToken           string `toml:"api_token" json:"api_token"`
	DefaultImageModel  string `toml:"default_image_model" json:"default_image_model"`
	Language           string `toml:"language" json:"language"`
	ShowFreeModelsOnly bool   `toml:"show_free_models_only" json:"show_free_models_only"`

	VaultDir           string `toml:"vault_dir" json:"vault_dir"`
	ChatAPI            string `toml:"chat_api" json:"chat_api"`
	RequestTimeoutSecs int    `toml:"request_timeout_secs" json:"request_timeout_secs"`

	Log logging.Config `toml:"log" json:"log"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		DefaultModel:       "openai",
		SaveToNotes:        true,
		NotesFolder:        "AI chats",
		ImagesFolder:       "AI images",
		APIToken:           "",
		DefaultImageModel:  "zimage",
		Language:           string(i18n.English),
		ShowFreeModelsOnly: false,
		VaultDir:           ".",
		ChatAPI:            ChatAPIOpenAI,
		RequestTimeoutSecs: 0,
		Log:                logging.DefaultConfig(),
	}
}

// Lang returns the parsed interface language.
func (s Settings) Lang() i18n.Lang {
	return i18n.Parse(s.Language)
}

// RequestTimeout returns the per-request deadline, or 0 for none.
func (s Settings) RequestTimeout() time.Duration {
	if s.RequestTimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(s.RequestTimeoutSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the config directory (~/.pollen, or $POLLEN_HOME).
func ConfigDir() (string, error) {
	if dir := os.Getenv("POLLEN_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".pollen"), nil
}

// ConfigPath returns the path to the settings file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads path from fs and merges it over Default(). A missing file
// yields the defaults.
func Load(fs afero.Fs, path string) (*Settings, error) {
	cfg := Default()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}
	if exists {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults restores defaults for string fields left empty. The token is
// allowed to be empty.
func (s *Settings) fillDefaults() {
	d := Default()
	if strings.TrimSpace(s.DefaultModel) == "" {
		s.DefaultModel = d.DefaultModel
	}
	if strings.TrimSpace(s.NotesFolder) == "" {
		s.NotesFolder = d.NotesFolder
	}
	if strings.TrimSpace(s.ImagesFolder) == "" {
		s.ImagesFolder = d.ImagesFolder
	}
	if strings.TrimSpace(s.DefaultImageModel) == "" {
		s.DefaultImageModel = d.DefaultImageModel
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.VaultDir == "" {
		s.VaultDir = d.VaultDir
	}
	if s.ChatAPI == "" {
		s.ChatAPI = d.ChatAPI
	}
	if s.Log.Level == "" {
		s.Log.Level = d.Log.Level
	}
	if s.Log.Format == "" {
		s.Log.Format = d.Log.Format
	}
	if s.Log.Output == "" {
		s.Log.Output = d.Log.Output
	}
	if s.Log.File.MaxSize <= 0 {
		s.Log.File.MaxSize = d.Log.File.MaxSize
	}
}

// Encode renders settings as TOML with a header comment.
func Encode(s *Settings) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# pollen configuration file\n")
	buf.WriteString("# Written by pollen on every settings change - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes settings to path atomically.
// SECURITY: 0600, the file may hold the API token.
func Save(fs afero.Fs, path string, s *Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(fs, path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// ApplyEnvOverrides applies POLLEN_* variables read through getenv.
func (s *Settings) ApplyEnvOverrides(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv("POLLEN_API_TOKEN"); v != "" {
		s.APIToken = v
	}
	if v := getenv("POLLEN_MODEL"); v != "" {
		s.DefaultModel = v
	}
	if v := getenv("POLLEN_LANGUAGE"); v != "" {
		s.Language = string(i18n.Parse(v))
	}
	if v := getenv("POLLEN_VAULT"); v != "" {
		s.VaultDir = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and reports all problems at once.
func (s *Settings) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(s.DefaultModel) == "" {
		errs = append(errs, ValidationError{"default_model", "must not be empty"})
	}
	if !i18n.Valid(s.Language) {
		errs = append(errs, ValidationError{"language", fmt.Sprintf("unsupported language %q (use en or ru)", s.Language)})
	}
	if s.ChatAPI != ChatAPIOpenAI && s.ChatAPI != ChatAPILegacy {
		errs = append(errs, ValidationError{"chat_api", fmt.Sprintf("must be %q or %q", ChatAPIOpenAI, ChatAPILegacy)})
	}
	if s.RequestTimeoutSecs < 0 {
		errs = append(errs, ValidationError{"request_timeout_secs", "must not be negative"})
	}
	for _, f := range []struct{ key, val string }{
		{"notes_folder", s.NotesFolder},
		{"images_folder", s.ImagesFolder},
	} {
		if strings.Contains(f.val, "..") {
			errs = append(errs, ValidationError{f.key, "must stay inside the vault"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
