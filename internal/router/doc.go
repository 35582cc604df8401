// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router decides which remote path handles a user input and
// normalizes every outcome into a Result.
//
// A model classified as Images always takes the image path, even inside a
// multi-turn chat. Every other model goes through the chat adapter selected
// by the chat_api setting:
//
//	openai   POST /v1/chat/completions with the full turn history
//	legacy   GET /text/<prompt> with only the last user turn
//
// Nothing in this package returns an error to the caller. Failures are
// tagged with an ErrorKind and carried in the Result; panics are recovered
// into a KindInternal result.
//
// Each conversation admits one outstanding request. A second Dispatch on
// the same conversation while one is pending returns a KindBusy result.
package router
