// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/internal/route"
	"github.com/MKhiriev/static-eshop/models"
)

type siteService struct {
	source SiteSource

	logger *logger.Logger
}

func NewSiteService(source SiteSource, logger *logger.Logger) SiteService {
	return &siteService{
		source: source,
		logger: logger,
	}
}

func (s *siteService) Current(ctx context.Context) models.SiteConfig {
	return s.source.Get()
}

func (s *siteService) Routes(ctx context.Context) ([]models.RouteInfo, error) {
	site := s.source.Get()
	contentTypes := site.ContentTypes()

	routes := make([]models.RouteInfo, 0, len(contentTypes))
	for _, ct := range contentTypes {
		raw, _ := site.Template(ct)
		tmpl, err := route.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidRoute, ct, err)
		}

		routes = append(routes, models.RouteInfo{
			ContentType: ct,
			Template:    tmpl.String(),
			Params:      tmpl.Params(),
		})
	}

	return routes, nil
}

func (s *siteService) ResolveRoute(ctx context.Context, contentType string, params map[string]string) (models.ResolvedRoute, error) {
	log := logger.FromContext(ctx)

	raw, ok := s.source.Get().Template(contentType)
	if !ok {
		return models.ResolvedRoute{}, fmt.Errorf("%w: %q", ErrUnknownContentType, contentType)
	}

	tmpl, err := route.Parse(raw)
	if err != nil {
		return models.ResolvedRoute{}, fmt.Errorf("%w %q: %w", ErrInvalidRoute, contentType, err)
	}

	path, err := tmpl.Resolve(params)
	if err != nil {
		if errors.Is(err, route.ErrMissingParam) {
			return models.ResolvedRoute{}, fmt.Errorf("%w: %w", ErrRouteParams, err)
		}
		return models.ResolvedRoute{}, err
	}

	log.Debug().
		Str("content_type", contentType).
		Str("path", path).
		Msg("route resolved")

	return models.ResolvedRoute{
		ContentType: contentType,
		Template:    raw,
		Path:        path,
	}, nil
}
