// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(staticToken(token)).WithBaseURL(server.URL)
}

// =============================================================================
// MODEL LISTINGS
// =============================================================================

func TestListModels(t *testing.T) {
	var gotPath, gotAuth string
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[
			{"name": "openai", "description": "OpenAI GPT-5 Mini", "input_modalities": ["text", "image"]},
			{"name": "midijourney", "is_specialized": true},
			{"description": "no name"},
			{"name": 42},
			"junk",
			{"name": "mistral", "input_modalities": "text"}
		]`))
	})

	entries, err := client.ListTextModels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/text/models", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, entries, 3)

	assert.Equal(t, ModelEntry{Name: "openai", Description: "OpenAI GPT-5 Mini", InputModalities: []string{"text", "image"}}, entries[0])
	assert.Equal(t, "midijourney", entries[1].Name)
	assert.True(t, entries[1].IsSpecialized)
	assert.Equal(t, "mistral", entries[2].Name)
	assert.Nil(t, entries[2].InputModalities)
}

func TestListModelsWithoutTokenSendsNoAuth(t *testing.T) {
	var sawAuth bool
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	})

	entries, err := client.ListImageModels(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.False(t, sawAuth)
}

func TestListModelsMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object", `{"models": []}`},
		{"not json", `<html>oops</html>`},
		{"string", `"openai"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			_, err := client.ListTextModels(context.Background())
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}

func TestListModelsHTTPError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	_, err := client.ListTextModels(context.Background())
	require.Error(t, err)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "HTTP 503: down for maintenance")
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(nil).WithBaseURL(server.URL)
	_, err := client.ListTextModels(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestCancelledContextIsNetworkFailure(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListTextModels(ctx)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, errors.Is(err, context.Canceled))
}

// =============================================================================
// CHAT
// =============================================================================

func TestChatCompletion(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi"}}]}`))
	})

	resp, err := client.ChatCompletion(context.Background(), "openai", []Message{
		UserMessage("hello"),
		{Role: "assistant", Content: "hey"},
		UserMessage("again"),
	})
	require.NoError(t, err)

	text, ok := resp.Content()
	assert.True(t, ok)
	assert.Equal(t, "hi", text)

	assert.Equal(t, "openai", got.Model)
	assert.True(t, got.Private)
	assert.Equal(t, []Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hey"},
		{Role: "user", Content: "again"},
	}, got.Messages)
}

func TestChatResponseContentMissing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"id":"x"}`},
		{"empty choices", `{"choices":[]}`},
		{"null content", `{"choices":[{"message":{"content":null}}]}`},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`},
		{"number content", `{"choices":[{"message":{"content":7}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &ChatResponse{raw: []byte(tt.body)}
			_, ok := resp.Content()
			assert.False(t, ok)
		})
	}

	var nilResp *ChatResponse
	_, ok := nilResp.Content()
	assert.False(t, ok)
}

func TestChatCompletionHTTPError(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.ChatCompletion(context.Background(), "openai", []Message{UserMessage("x")})
	require.Error(t, err)
	assert.Equal(t, "HTTP 429", err.Error())
}

func TestLegacyText(t *testing.T) {
	var gotPath, gotModel string
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotModel = r.URL.Query().Get("model")
		w.Write([]byte("  plain answer \n"))
	})

	text, err := client.LegacyText(context.Background(), "mistral", "what is 2/2?")
	require.NoError(t, err)
	assert.Equal(t, "plain answer", text)
	assert.Equal(t, "/text/what%20is%202%2F2%3F", gotPath)
	assert.Equal(t, "mistral", gotModel)
}

func TestLegacyTextEmpty(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.LegacyText(context.Background(), "mistral", "hi")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

// =============================================================================
// IMAGES
// =============================================================================

func TestGenerateImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	var gotPath string
	var gotQuery map[string][]string
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	})

	img, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "a red fox", Model: "turbo", Width: 512, Height: 256})
	require.NoError(t, err)

	assert.Equal(t, png, img.Data)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, "/image/a%20red%20fox", gotPath)
	assert.Equal(t, "turbo", gotQuery["model"][0])
	assert.Equal(t, "512", gotQuery["width"][0])
	assert.Equal(t, "256", gotQuery["height"][0])
	assert.Equal(t, "true", gotQuery["nologo"][0])
	assert.Equal(t, "true", gotQuery["private"][0])
	assert.Equal(t, "secret", gotQuery["key"][0])
}

func TestGenerateImageDefaults(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte{1})
	})

	img, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, DefaultImageModel, gotQuery["model"][0])
	assert.Equal(t, "1024", gotQuery["width"][0])
	assert.Equal(t, 1024, img.Height)
}

func TestGenerateImageRequiresToken(t *testing.T) {
	called := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrTokenRequired)
	assert.Contains(t, err.Error(), "API key required")
	assert.False(t, called, "request must not be attempted without a token")
}

func TestGenerateImageHTTPError(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "sunset", Model: "turbo", Width: 512, Height: 512})
	require.Error(t, err)
	assert.Equal(t, `HTTP 500: {"error":"boom"}`, err.Error())
}

func TestGenerateImageHTTPErrorEmptyBody(t *testing.T) {
	client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: Unknown error", err.Error())
}

func TestGenerateImageNetworkFailureRedactsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	core, logs := observer.New(zap.DebugLevel)
	client := NewClient(staticToken("SUPERSECRET")).WithBaseURL(server.URL).WithLogger(zap.New(core))

	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "a cat", Model: "flux", Width: 512, Height: 512})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.NotContains(t, err.Error(), "SUPERSECRET")
	assert.Contains(t, err.Error(), "key=REDACTED")

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
	assert.NotNil(t, urlErr.Unwrap())

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, "SUPERSECRET")
		for k, v := range entry.ContextMap() {
			assert.NotContains(t, fmt.Sprint(v), "SUPERSECRET", k)
		}
	}
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "http://h/image/x?key=REDACTED&model=flux", redactURL("http://h/image/x?key=abc&model=flux"))
	assert.Equal(t, "http://h/text/models", redactURL("http://h/text/models"))
	assert.Equal(t, "http://h/text/x?model=m", redactURL("http://h/text/x?model=m"))
	assert.Equal(t, "%zz", redactURL("%zz?key=abc"))

	plain := errors.New("boom")
	assert.Same(t, plain, redactURLError(plain))
}

func TestClientAccessors(t *testing.T) {
	token := ""
	client := NewClient(func() string { return token }).WithBaseURL("http://api.test")
	assert.Equal(t, "http://api.test", client.BaseURL())
	assert.False(t, client.HasToken())

	token = "tok"
	assert.True(t, client.HasToken())
	assert.Equal(t, "tok", client.Token())
}

func TestHTTPErrorTruncatesBody(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	err := &HTTPError{StatusCode: 500, Body: string(long)}
	assert.Less(t, len(err.Error()), 400)
}
