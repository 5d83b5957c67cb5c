// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests. Callers can match against
// them with [errors.Is].
var (
	// ErrUnsupportedContentType is returned when a submission is neither JSON
	// nor a multipart or urlencoded form.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedBody is returned when the body cannot be decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrPayloadTooLarge is returned when the body exceeds the upload limit.
	ErrPayloadTooLarge = errors.New("request body too large")

	// ErrInvalidUserID is returned when the {user_id} path parameter is not
	// an integer.
	ErrInvalidUserID = errors.New("invalid user id")
)
