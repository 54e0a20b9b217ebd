// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/static-eshop/models"
)

// SiteService answers questions about the active site configuration.
type SiteService interface {
	// Current returns the active configuration. The value is immutable and
	// may be retained by the caller.
	Current(ctx context.Context) models.SiteConfig
	// Routes lists the route templates ordered by content type.
	Routes(ctx context.Context) ([]models.RouteInfo, error)
	// ResolveRoute fills the template of contentType with params.
	ResolveRoute(ctx context.Context, contentType string, params map[string]string) (models.ResolvedRoute, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SiteSource supplies the active configuration. config.Holder satisfies it.
type SiteSource interface {
	Get() models.SiteConfig
}
