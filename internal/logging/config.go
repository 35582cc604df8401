// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"errors"
	"strings"
)

// Config defines the logger configuration.
type Config struct {
	Level  string     `toml:"level" json:"level"`   // debug, info, warn, error
	Format string     `toml:"format" json:"format"` // json, console
	Output string     `toml:"output" json:"output"` // stderr, file, both
	File   FileConfig `toml:"file" json:"file"`
}

// FileConfig defines rotating file output.
type FileConfig struct {
	Filename   string `toml:"filename" json:"filename"`
	MaxSize    int    `toml:"max_size_mb" json:"max_size_mb"`
	MaxAge     int    `toml:"max_age_days" json:"max_age_days"`
	MaxBackups int    `toml:"max_backups" json:"max_backups"`
	Compress   bool   `toml:"compress" json:"compress"`
}

// DefaultConfig returns the CLI default: JSON lines to a rotating file so
// terminal output stays clean. Filename is filled in by the caller.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: "file",
		File: FileConfig{
			MaxSize:    10,
			MaxAge:     30,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the logger configuration.
func (c Config) Validate() error {
	levelValid := false
	for _, level := range validLevels {
		if strings.ToLower(c.Level) == level {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return errors.New("invalid log level, must be one of: debug, info, warn, error")
	}

	if c.Format != "json" && c.Format != "console" {
		return errors.New("invalid log format, must be 'json' or 'console'")
	}

	if c.Output != "stderr" && c.Output != "file" && c.Output != "both" {
		return errors.New("invalid log output, must be 'stderr', 'file' or 'both'")
	}

	if c.Output == "file" || c.Output == "both" {
		if c.File.Filename == "" {
			return errors.New("log filename is required when output is 'file' or 'both'")
		}
		if c.File.MaxSize <= 0 {
			return errors.New("log max_size_mb must be greater than 0")
		}
		if c.File.MaxBackups < 0 {
			return errors.New("log max_backups must be greater than or equal to 0")
		}
	}

	return nil
}
