// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// output.go - JSON output for scripting.
//
// Every command that supports --json writes exactly one JSONResponse to
// stdout. Human-readable progress goes to stderr.

package cli

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/jeranaias/pollen/internal/router"
)

// JSONResponse is the response envelope for all commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data any `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Kind classifies the error, when one is known
	Kind string `json:"kind,omitempty"`

	// Timestamp is the RFC 3339 time the response was generated
	Timestamp string `json:"timestamp"`

	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a successful response.
func NewJSONResponse(command string, data any) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates an error response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	msg := err.Error()
	resp := &JSONResponse{
		Success:   false,
		Error:     &msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
	if kind := errorKind(err); kind != "" {
		resp.Kind = kind
	}
	return resp
}

// Print writes the response as indented JSON.
func (r *JSONResponse) Print(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(r)
}

// errorKind names the failure class of err for JSON consumers.
func errorKind(err error) string {
	var resErr *router.ResultError
	if errors.As(err, &resErr) {
		return resErr.Kind.String()
	}
	switch GetExitCode(err) {
	case ExitUsageError:
		return "usage"
	case ExitConfigError:
		return "config"
	case ExitAuthError:
		return "precondition"
	case ExitNetworkError:
		return "network"
	case ExitStorageError:
		return "storage"
	default:
		return ""
	}
}
