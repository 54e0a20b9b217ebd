// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/internal/route"
	"github.com/MKhiriev/static-eshop/models"
)

func newTestSiteService(site models.SiteConfig) SiteService {
	return NewSiteService(StaticSource(site), logger.Nop())
}

func withTemplates(templates map[string]string) models.SiteConfig {
	doc := models.DefaultDocument()
	doc.Templates = templates
	return models.NewSiteConfig(doc)
}

func TestSiteService_Current(t *testing.T) {
	svc := newTestSiteService(models.Default())
	assert.True(t, svc.Current(context.Background()).Equal(models.Default()))
}

func TestSiteService_Routes(t *testing.T) {
	svc := newTestSiteService(withTemplates(map[string]string{
		"Post":               "/blog/:year/:slug",
		"CommercejsProducts": "/products/:id",
	}))

	routes, err := svc.Routes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.RouteInfo{
		{ContentType: "CommercejsProducts", Template: "/products/:id", Params: []string{"id"}},
		{ContentType: "Post", Template: "/blog/:year/:slug", Params: []string{"year", "slug"}},
	}, routes)
}

func TestSiteService_RoutesEmpty(t *testing.T) {
	routes, err := newTestSiteService(withTemplates(nil)).Routes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestSiteService_ResolveRoute(t *testing.T) {
	svc := newTestSiteService(models.Default())

	got, err := svc.ResolveRoute(context.Background(), "CommercejsProducts", map[string]string{"id": "prod_42"})
	require.NoError(t, err)
	assert.Equal(t, models.ResolvedRoute{
		ContentType: "CommercejsProducts",
		Template:    "/products/:id",
		Path:        "/products/prod_42",
	}, got)
}

func TestSiteService_ResolveRouteEscapes(t *testing.T) {
	svc := newTestSiteService(models.Default())

	got, err := svc.ResolveRoute(context.Background(), "CommercejsProducts", map[string]string{"id": "a b/c"})
	require.NoError(t, err)
	assert.Equal(t, "/products/a%20b%2Fc", got.Path)
}

func TestSiteService_ResolveRouteErrors(t *testing.T) {
	svc := newTestSiteService(models.Default())

	_, err := svc.ResolveRoute(context.Background(), "Post", map[string]string{"id": "1"})
	assert.ErrorIs(t, err, ErrUnknownContentType)

	_, err = svc.ResolveRoute(context.Background(), "CommercejsProducts", nil)
	assert.ErrorIs(t, err, ErrRouteParams)
	assert.ErrorIs(t, err, route.ErrMissingParam)
}

func TestSiteService_FollowsSource(t *testing.T) {
	src := &swappable{site: models.Default()}
	svc := NewSiteService(src, logger.Nop())

	src.site = withTemplates(map[string]string{"Post": "/blog/:slug"})

	_, err := svc.ResolveRoute(context.Background(), "CommercejsProducts", map[string]string{"id": "1"})
	assert.ErrorIs(t, err, ErrUnknownContentType)

	got, err := svc.ResolveRoute(context.Background(), "Post", map[string]string{"slug": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "/blog/hello", got.Path)
}

type swappable struct {
	site models.SiteConfig
}

func (s *swappable) Get() models.SiteConfig { return s.site }
