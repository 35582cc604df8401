// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app holds the application state shared by every command: the
// settings store, the model catalog, the orchestrator, the vault and the
// currently selected model.
//
// Only two operations write shared state: settings changes (through the
// store) and catalog reloads. Everything else reads.
package app
