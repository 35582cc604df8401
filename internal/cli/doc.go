// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the command handlers for
// pollen.
//
// Commands:
//
//	pollen chat [--resume note] Interactive chat (default)
//	pollen ask "question"       One question, answer saved as a note
//	pollen image "prompt"       Generate an image into the vault
//	pollen models               List available models by category
//	pollen config [show|get|set|path]
//	pollen version
//	pollen help
//
// Every handler returns an error instead of exiting; Run turns errors into
// exit codes. All I/O goes through Env so handlers run under test with
// in-memory file systems and a stub API.
package cli
