// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud provides the HTTP client for the Pollinations generation API.
//
// The hosted API exposes model listings, an OpenAI-compatible chat
// completions endpoint, a legacy raw-text endpoint, and an image endpoint
// that returns raw bytes. Base URLs are fixed; tests point the client at an
// httptest server with WithBaseURL.
//
// # Key Types
//
//   - Client: Shared client with an optional bearer token source
//   - ModelEntry: One entry of a model listing
//   - ChatResponse: Raw chat completion body with tolerant field access
//   - Image: Raw bytes returned by the image endpoint
//   - HTTPError: Non-200 status with the response body
//
// # Errors
//
// Every failure is one of ErrNetwork (wrapped transport error or cancelled
// context), *HTTPError, ErrUnexpectedResponse, or ErrTokenRequired.
//
// # Usage
//
//	client := cloud.NewClient(func() string { return settings.APIToken })
//	resp, err := client.ChatCompletion(ctx, "openai", []cloud.Message{
//	    cloud.UserMessage("hello"),
//	})
//	if text, ok := resp.Content(); ok {
//	    fmt.Println(text)
//	}
package cloud
