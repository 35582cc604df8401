// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
//
// # Key Types
//
//   - Role: Turn role enumeration (user, assistant)
//   - Turn: Single message with role, content, and timestamp
//   - Conversation: Append-only ordered sequence of turns plus an in-flight flag
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.Append(model.RoleUser, "Hello!")
//
//	if !conv.Begin() {
//	    return errBusy
//	}
//	defer conv.End()
package model
