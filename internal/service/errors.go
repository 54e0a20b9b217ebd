// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownContentType = errors.New("unknown content type")
	ErrInvalidRoute       = errors.New("invalid route template")
	ErrRouteParams        = errors.New("route parameters do not match the template")
)
