// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// Message is one entry of the chat completions message history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserMessage creates a user message.
func UserMessage(content string) Message {
	return Message{Role: "user", Content: content}
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Private  bool      `json:"private"`
}

// ChatResponse holds a raw chat completion body. The shape is not trusted;
// fields are looked up on demand.
type ChatResponse struct {
	raw []byte
}

// Content returns choices[0].message.content. ok is false when the field is
// missing, not a string, or empty.
func (r *ChatResponse) Content() (string, bool) {
	if r == nil {
		return "", false
	}
	v := gjson.GetBytes(r.raw, "choices.0.message.content")
	if v.Type != gjson.String || v.Str == "" {
		return "", false
	}
	return v.Str, true
}

// ChatCompletion posts the whole message history to /v1/chat/completions.
// Conversation state lives entirely in messages; nothing is kept server-side.
func (c *Client) ChatCompletion(ctx context.Context, model string, messages []Message) (*ChatResponse, error) {
	body, err := c.postJSON(ctx, c.baseURL+"/v1/chat/completions", chatRequest{
		Model:    model,
		Messages: messages,
		Private:  true,
	})
	if err != nil {
		return nil, err
	}
	return &ChatResponse{raw: body}, nil
}

// LegacyText calls the line-based GET /text/<prompt> endpoint, which returns
// the answer as the raw body. Only a single prompt is accepted.
func (c *Client) LegacyText(ctx context.Context, model, prompt string) (string, error) {
	q := url.Values{}
	q.Set("model", model)
	q.Set("private", "true")

	endpoint := c.baseURL + "/text/" + url.PathEscape(prompt) + "?" + q.Encode()
	body, _, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", unexpected("empty legacy response")
	}
	return text, nil
}
