// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import "errors"

var (
	// ErrEmptyTemplate is returned by Parse for an empty template string.
	ErrEmptyTemplate = errors.New("empty route template")
	// ErrNoLeadingSlash is returned when a template is not an absolute path.
	ErrNoLeadingSlash = errors.New("route template must start with `/`")
	// ErrInvalidParamName is returned for placeholders such as ":" or ":1id".
	ErrInvalidParamName = errors.New("invalid route parameter name")
	// ErrDuplicateParam is returned when a placeholder name appears twice.
	ErrDuplicateParam = errors.New("duplicate route parameter")
	// ErrMissingParam is returned by Resolve when a placeholder has no value.
	ErrMissingParam = errors.New("missing route parameter value")
)
