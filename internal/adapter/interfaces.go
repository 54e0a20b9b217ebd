// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport used while loading a site
// configuration.
//
// [SiteSource] fetches a JSON site document over HTTP. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/static-eshop/models"
)

// SiteSource fetches a site document from a URL. It satisfies
// config.RemoteSource.
type SiteSource interface {
	// FetchSite GETs url and decodes the JSON body strictly: unknown keys
	// are rejected the same way a local file would be.
	FetchSite(ctx context.Context, url string) (models.SiteDocument, error)
}
