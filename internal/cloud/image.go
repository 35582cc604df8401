// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultImageModel is used when no image model is given.
	DefaultImageModel = "zimage"

	// DefaultImageSize is the default width and height.
	DefaultImageSize = 1024
)

// ImageRequest describes one image generation call.
type ImageRequest struct {
	Prompt string
	Model  string
	Width  int
	Height int
}

// withDefaults fills the zero values.
func (r ImageRequest) withDefaults() ImageRequest {
	if r.Model == "" {
		r.Model = DefaultImageModel
	}
	if r.Width <= 0 {
		r.Width = DefaultImageSize
	}
	if r.Height <= 0 {
		r.Height = DefaultImageSize
	}
	return r
}

// Image is the raw result of an image generation call.
type Image struct {
	Data        []byte
	ContentType string
	Model       string
	Width       int
	Height      int
}

// GenerateImage fetches GET /image/<prompt>. A token is required; without
// one the request is not attempted.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*Image, error) {
	token := c.token()
	if token == "" {
		return nil, ErrTokenRequired
	}
	req = req.withDefaults()

	q := url.Values{}
	q.Set("model", req.Model)
	q.Set("width", strconv.Itoa(req.Width))
	q.Set("height", strconv.Itoa(req.Height))
	q.Set("nologo", "true")
	q.Set("private", "true")
	q.Set(tokenParam, token)

	endpoint := c.baseURL + "/image/" + url.PathEscape(req.Prompt) + "?" + q.Encode()
	data, contentType, err := c.get(ctx, endpoint)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && strings.TrimSpace(httpErr.Body) == "" {
			httpErr.Body = "Unknown error"
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, unexpected("empty image body")
	}

	return &Image{
		Data:        data,
		ContentType: contentType,
		Model:       req.Model,
		Width:       req.Width,
		Height:      req.Height,
	}, nil
}
