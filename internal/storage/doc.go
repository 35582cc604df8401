// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage writes notes and images into the document vault.
//
// The vault is a directory tree addressed by vault-relative, slash-separated
// paths such as "AI chats/Chat with openai 2025-03-07T14-05-09.md". All I/O
// goes through an afero.Fs rooted at the vault, so tests run against an
// in-memory file system.
//
// # Key Types
//
//   - Vault: Folder creation and create-only file writes
//   - StorageError: Wraps every failure; matches ErrStorage
//
// # Usage
//
//	vault := storage.NewVault("/home/me/notes", logger)
//	path, err := vault.Create("AI chats", name, data)
//	if errors.Is(err, storage.ErrStorage) { ... }
package storage
