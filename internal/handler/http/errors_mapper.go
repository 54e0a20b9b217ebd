// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/route"
	"github.com/MKhiriev/static-eshop/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrUnknownContentType: http.StatusNotFound,
	service.ErrRouteParams:        http.StatusBadRequest,
	service.ErrInvalidRoute:       http.StatusInternalServerError,

	route.ErrMissingParam: http.StatusBadRequest,

	config.ErrUnsupportedFormat: http.StatusBadRequest,

	ErrEmptyContentType: http.StatusBadRequest,
	ErrAmbiguousParam:   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
