// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyContentType is returned when the content type path segment
	// is blank.
	ErrEmptyContentType = errors.New("empty content type")

	// ErrAmbiguousParam is returned when a route parameter is given more
	// than once in the query string.
	ErrAmbiguousParam = errors.New("route parameter given more than once")
)
