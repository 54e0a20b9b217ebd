// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySiteName      = errors.New("site name is required")
	ErrEmptyContentType   = errors.New("content type name cannot be empty")
	ErrInvalidTemplate    = errors.New("invalid route template")
	ErrTemplateNoParams   = errors.New("route template has no `:param` placeholder")
	ErrEmptyPluginUse     = errors.New("plugin `use` is required")
	ErrDuplicatePlugin    = errors.New("plugin registered more than once")
	ErrEmptyOptionName    = errors.New("plugin option name cannot be empty")
	ErrNonPrimitiveOption = errors.New("plugin option value must be a string, number, boolean or null")
)
