// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/jeranaias/pollen/internal/cloud"
	"github.com/jeranaias/pollen/internal/storage"
)

// ErrBusy is returned when a conversation already has a request in flight.
var ErrBusy = errors.New("a request is already in progress")

// unexpectedMessage is the fixed message for a malformed success payload.
const unexpectedMessage = "Unexpected API response"

// ============================================================================
// ERROR KIND
// ============================================================================

// ErrorKind tags the failure carried by a Result.
type ErrorKind int

const (
	// KindNone marks a successful result.
	KindNone ErrorKind = iota
	// KindNetwork means the request produced no response (includes
	// cancellation and timeouts).
	KindNetwork
	// KindHTTP means a non-200 status.
	KindHTTP
	// KindUnexpectedResponse means a 200 without an extractable answer.
	KindUnexpectedResponse
	// KindPrecondition means the request was not attempted.
	KindPrecondition
	// KindStorage means a vault write failed.
	KindStorage
	// KindBusy means a request was already outstanding.
	KindBusy
	// KindInternal is anything else, including recovered panics.
	KindInternal
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindUnexpectedResponse:
		return "unexpected_response"
	case KindPrecondition:
		return "precondition"
	case KindStorage:
		return "storage"
	case KindBusy:
		return "busy"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ============================================================================
// RESULT
// ============================================================================

// GeneratedImage is a successful image generation, ready to be saved.
type GeneratedImage struct {
	Filename    string
	Data        []byte
	ContentType string
	Model       string
	Width       int
	Height      int
}

// Result is the outcome of a dispatch. Exactly one of Text/Image is set on
// success; ErrorMessage and Kind are set on failure.
type Result struct {
	Success      bool
	Text         string
	Image        *GeneratedImage
	ErrorMessage string
	Kind         ErrorKind
}

// TextResult builds a successful text result.
func TextResult(text string) Result {
	return Result{Success: true, Text: text}
}

// ImageResult builds a successful image result.
func ImageResult(img *GeneratedImage) Result {
	return Result{Success: true, Image: img}
}

// Failure builds a failed result.
func Failure(kind ErrorKind, msg string) Result {
	return Result{Kind: kind, ErrorMessage: msg}
}

// IsImage reports whether the result carries an image.
func (r Result) IsImage() bool {
	return r.Success && r.Image != nil
}

// Err converts a failed result back into an error, or nil on success.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &ResultError{Kind: r.Kind, Message: r.ErrorMessage}
}

// ResultError is the error form of a failed Result.
type ResultError struct {
	Kind    ErrorKind
	Message string
}

func (e *ResultError) Error() string {
	return e.Message
}

// ResultFromError maps an error onto a failed Result.
func ResultFromError(err error) Result {
	if err == nil {
		return Failure(KindInternal, "unknown error")
	}

	var httpErr *cloud.HTTPError
	var resErr *ResultError
	switch {
	case errors.As(err, &resErr):
		return Failure(resErr.Kind, resErr.Message)
	case errors.Is(err, ErrBusy):
		return Failure(KindBusy, err.Error())
	case errors.Is(err, cloud.ErrTokenRequired):
		return Failure(KindPrecondition, cloud.ErrTokenRequired.Error())
	case errors.As(err, &httpErr):
		return Failure(KindHTTP, httpErr.Error())
	case errors.Is(err, cloud.ErrUnexpectedResponse):
		return Failure(KindUnexpectedResponse, unexpectedMessage)
	case errors.Is(err, cloud.ErrNetwork),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return Failure(KindNetwork, err.Error())
	case errors.Is(err, storage.ErrStorage):
		return Failure(KindStorage, err.Error())
	default:
		return Failure(KindInternal, err.Error())
	}
}
