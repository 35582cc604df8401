// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides settings management for pollen.
//
// Settings live in ~/.pollen/config.toml. Loading decodes the file on top of
// Default(), so any key missing from the file keeps its default. Every
// change made through Store is validated and written back immediately.
//
// # Key Types
//
//   - Settings: All user settings
//   - Store: Owns the live settings; Update and Set persist on every change
//   - ValidationError: A single invalid field
//
// # Configuration Keys
//
//	default_model          Model used for chat and quick questions (openai)
//	save_to_notes          Save conversations as notes (true)
//	notes_folder           Vault folder for conversation notes (AI chats)
//	images_folder          Vault folder for generated images (AI images)
//	api_token              Optional bearer token; required for images
//	default_image_model    Model used by the image command (zimage)
//	language               Interface language, en or ru (en)
//	show_free_models_only  Hide paid models from listings (false)
//	vault_dir              Vault root directory (.)
//	chat_api               openai or legacy (openai)
//	request_timeout_secs   Per-request deadline, 0 for none (0)
//	log.level              debug, info, warn, error (info)
//
// # Environment Variables
//
//	POLLEN_HOME       Overrides the config directory
//	POLLEN_API_TOKEN  Overrides api_token
//	POLLEN_MODEL      Overrides default_model
//	POLLEN_LANGUAGE   Overrides language
//	POLLEN_VAULT      Overrides vault_dir
//
// Environment overrides are applied when reading and are never written back
// to the file.
//
// # Usage
//
//	store, err := config.Open(afero.NewOsFs(), path, logger)
//	settings := store.Get()
//	err = store.Set("language", "ru")
package config
