// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/pollen/internal/util"
)

// maxErrorBodyRunes bounds how much of an error body ends up in a message.
const maxErrorBodyRunes = 300

var (
	// ErrNetwork indicates the request never produced a response.
	ErrNetwork = errors.New("network failure")

	// ErrUnexpectedResponse indicates a 200 response without the expected fields.
	ErrUnexpectedResponse = errors.New("unexpected API response")

	// ErrTokenRequired indicates image generation was attempted without a token.
	ErrTokenRequired = errors.New("API key required for image generation. Please add it in settings.")
)

// HTTPError is returned for any non-200 status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, util.TruncateRunes(body, maxErrorBodyRunes))
}

func networkError(err error) error {
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

func unexpected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedResponse, fmt.Sprintf(format, args...))
}
