// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("remote source unauthorized")
	ErrForbidden           = errors.New("remote source forbidden")
	ErrNotFound            = errors.New("site document not found")
	ErrBadGateway          = errors.New("remote source bad gateway")
	ErrInternalServerError = errors.New("remote source internal error")
	ErrUnexpectedStatus    = errors.New("unexpected remote source status")
	ErrInvalidDocument     = errors.New("invalid site document")
)
