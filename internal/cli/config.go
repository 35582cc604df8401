// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - The settings command.

package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/config"
	"github.com/jeranaias/pollen/internal/i18n"
)

// SettingData is one setting in JSON output.
type SettingData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Env   bool   `json:"from_env,omitempty"`
}

// handleConfig dispatches config subcommands. Without one it shows all
// settings.
func (r *runner) handleConfig() error {
	p := NewArgParser(r.args.Rest)

	switch sub := strings.ToLower(p.Subcommand()); sub {
	case "", "show", "list":
		return r.configShow()
	case "get":
		if p.PositionalCount() < 2 {
			return NewUsageError("usage: pollen config get <key>")
		}
		return r.configGet(p.Positional(1))
	case "set":
		if p.PositionalCount() < 3 {
			return NewUsageError("usage: pollen config set <key> <value>")
		}
		return r.configSet(p.Positional(1), p.Rest(2))
	case "path":
		return r.configPath()
	default:
		msg := fmt.Sprintf("unknown config subcommand %q", sub)
		if s := suggest(sub, []string{"show", "get", "set", "path"}); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return &UsageError{Message: msg}
	}
}

// settingRows lists every key with its effective value, masked, and marks
// values that differ from the file because of the environment.
func (r *runner) settingRows() ([]SettingData, error) {
	store := r.app.Store()
	effective := store.Get()
	stored := store.Stored()

	keys := config.Keys()
	rows := make([]SettingData, 0, len(keys))
	for _, key := range keys {
		val, err := effective.Display(key)
		if err != nil {
			return nil, err
		}
		orig, err := stored.Display(key)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SettingData{Key: key, Value: val, Env: val != orig})
	}
	return rows, nil
}

func (r *runner) configShow() error {
	rows, err := r.settingRows()
	if err != nil {
		return &ConfigError{Err: err}
	}
	if r.args.JSON {
		return NewJSONResponse("config", rows).Print(r.env.Stdout)
	}

	lang := r.app.Lang()
	fmt.Fprintln(r.env.Stdout, TitleStyle.Render(i18n.T(lang, i18n.KeySettingsTitle)))
	fmt.Fprintln(r.env.Stdout)
	for _, row := range rows {
		value := row.Value
		if value == "" {
			value = MutedStyle.Render("(not set)")
		}
		if row.Env {
			value += " " + MutedStyle.Render("(from environment)")
		}
		printField(r.env.Stdout, row.Key, value)
	}
	fmt.Fprintln(r.env.Stdout)
	printMuted(r.env.Stdout, "%s", r.app.Store().Path())
	return nil
}

func (r *runner) configGet(key string) error {
	settings := r.app.Settings()
	value, err := settings.Display(normalizeKey(key))
	if err != nil {
		return &ConfigError{Err: err}
	}
	if r.args.JSON {
		return NewJSONResponse("config", SettingData{Key: normalizeKey(key), Value: value}).Print(r.env.Stdout)
	}
	fmt.Fprintln(r.env.Stdout, value)
	return nil
}

func (r *runner) configSet(key, value string) error {
	key = normalizeKey(key)
	if err := r.app.Store().Set(key, value); err != nil {
		return &ConfigError{Err: err}
	}
	r.logger.Info("setting changed", zap.String("key", key))

	stored := r.app.Store().Stored()
	shown, err := stored.Display(key)
	if err != nil {
		return &ConfigError{Err: err}
	}
	if r.args.JSON {
		return NewJSONResponse("config", SettingData{Key: key, Value: shown}).Print(r.env.Stdout)
	}
	if !r.args.Quiet {
		printSuccess(r.env.Stdout, "%s = %s", key, shown)
	}
	return nil
}

func (r *runner) configPath() error {
	path := r.app.Store().Path()
	if r.args.JSON {
		return NewJSONResponse("config", map[string]string{"path": path}).Print(r.env.Stdout)
	}
	fmt.Fprintln(r.env.Stdout, path)
	return nil
}

// normalizeKey accepts dashes for underscores.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "-", "_")
}
