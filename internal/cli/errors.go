// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types, exit codes and error display for pollen commands.
//
// Handlers always return errors and never print them; Run calls
// DisplayError once and maps the error to an exit code.

package cli

import (
	"errors"
	"fmt"

	"github.com/jeranaias/pollen/internal/app"
	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/config"
	"github.com/jeranaias/pollen/internal/router"
	"github.com/jeranaias/pollen/internal/storage"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a settings error
	ExitConfigError = 3
	// ExitAuthError indicates a missing API token
	ExitAuthError = 4
	// ExitNetworkError indicates a failed API call
	ExitNetworkError = 5
	// ExitStorageError indicates a vault write failure
	ExitStorageError = 6
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError is a malformed command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError wraps a settings failure.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// quietError has already been shown to the user; only its exit code
// matters.
type quietError struct {
	err error
}

func (e *quietError) Error() string { return e.err.Error() }
func (e *quietError) Unwrap() error { return e.err }

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode maps an error to the process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var cfgErr *ConfigError
	var resErr *router.ResultError
	var httpErr *cloud.HTTPError
	var validationErr config.ValidateErrors

	switch {
	case errors.As(err, &usageErr):
		return ExitUsageError
	case errors.As(err, &cfgErr), errors.As(err, &validationErr),
		errors.Is(err, config.ErrUnknownKey):
		return ExitConfigError
	case errors.As(err, &resErr):
		return exitCodeForKind(resErr.Kind)
	case errors.Is(err, cloud.ErrTokenRequired):
		return ExitAuthError
	case errors.As(err, &httpErr), errors.Is(err, cloud.ErrNetwork),
		errors.Is(err, cloud.ErrUnexpectedResponse):
		return ExitNetworkError
	case errors.Is(err, storage.ErrStorage), errors.Is(err, app.ErrSavingDisabled):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}

func exitCodeForKind(kind router.ErrorKind) int {
	switch kind {
	case router.KindPrecondition:
		return ExitAuthError
	case router.KindNetwork, router.KindHTTP, router.KindUnexpectedResponse:
		return ExitNetworkError
	case router.KindStorage:
		return ExitStorageError
	case router.KindNone:
		return ExitSuccess
	default:
		return ExitGeneralError
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

// DisplayError prints err once: as a JSON error response in JSON mode,
// otherwise as a styled line on stderr.
func DisplayError(env Env, err error, jsonMode bool) {
	if err == nil {
		return
	}
	var quiet *quietError
	if errors.As(err, &quiet) {
		return
	}

	if jsonMode {
		_ = NewJSONErrorResponse("", err).Print(env.Stdout)
		return
	}

	fmt.Fprintf(env.Stderr, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// failResult shows a failed result in the user's language and returns an
// error carrying its kind. In JSON mode the error is left for DisplayError.
func (r *runner) failResult(res router.Result) error {
	err := res.Err()
	if r.args.JSON {
		return err
	}
	fmt.Fprintln(r.env.Stderr, ErrorStyle.Render(app.ErrorText(r.app.Lang(), res)))
	return &quietError{err: err}
}
