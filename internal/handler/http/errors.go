// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests.
var (
	// ErrInvalidItemID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidItemID = errors.New("invalid item id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
