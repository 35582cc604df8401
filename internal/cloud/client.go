// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/pollen/internal/logging"
)

const (
	// DefaultBaseURL is the base URL of the hosted generation API.
	DefaultBaseURL = "https://gen.pollinations.ai"

	// MaxResponseSize bounds every response body, images included.
	MaxResponseSize = 32 * 1024 * 1024

	userAgent = "pollen/0.1.0"

	tokenParam = "key"
	redacted   = "REDACTED"
)

// sharedHTTPClient has no Timeout; deadlines come from the request context.
// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// TokenSource returns the current bearer token, or "" when none is set.
// It is read on every request so settings changes apply immediately.
type TokenSource func() string

// Client talks to the hosted generation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	logger     *zap.Logger
}

// NewClient creates a client against DefaultBaseURL.
func NewClient(token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: sharedHTTPClient,
		token:      token,
		logger:     zap.NewNop(),
	}
}

// WithBaseURL sets a custom base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithHTTPClient replaces the shared HTTP client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	if h != nil {
		c.httpClient = h
	}
	return c
}

// WithLogger sets the logger used for request metadata.
func (c *Client) WithLogger(l *zap.Logger) *Client {
	c.logger = logging.OrNop(l).Named("cloud")
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the current token.
func (c *Client) Token() string {
	return c.token()
}

// HasToken reports whether a token is configured.
func (c *Client) HasToken() bool {
	return c.token() != ""
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// setHeaders sets the common headers. The bearer header is only sent when a
// token is configured.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, networkError(fmt.Errorf("failed to read response: %w", err))
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, unexpected("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// do executes req and returns the body of a 200 response. Any other status
// becomes an *HTTPError carrying the body.
func (c *Client) do(req *http.Request) ([]byte, string, error) {
	c.setHeaders(req)

	// SECURITY: only method and path are logged; the query may hold the key.
	start := time.Now()
	c.logger.Debug("api request", zap.String("method", req.Method), zap.String("path", req.URL.Path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURLError(err)
		c.logger.Debug("api request failed", zap.String("path", req.URL.Path), zap.Error(err))
		return nil, "", networkError(err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, "", err
	}

	c.logger.Debug("api response",
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return nil, "", &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// redactURLError replaces the key query parameter in the URL carried by a
// transport error. The cause is kept so errors.Is still sees it.
func redactURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(urlErr.URL), Err: urlErr.Err}
}

// redactURL masks the key query parameter. An unparsable URL loses its
// whole query.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		base, _, _ := strings.Cut(raw, "?")
		return base
	}
	q := u.Query()
	if !q.Has(tokenParam) {
		return raw
	}
	q.Set(tokenParam, redacted)
	u.RawQuery = q.Encode()
	return u.String()
}

// get performs a GET against an absolute URL.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

// postJSON marshals payload and POSTs it.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, _, err := c.do(req)
	return body, err
}
