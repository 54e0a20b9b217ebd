// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/static-eshop/internal/route"
	"github.com/MKhiriev/static-eshop/internal/service"
	"github.com/MKhiriev/static-eshop/models"
)

const defaultSiteJSON = `{
  "siteName": "Static E-Shop",
  "templates": {"CommercejsProducts": "/products/:id"},
  "plugins": [
    {"use": "gridsome-plugin-tailwindcss"},
    {"use": "gridsome-source-commercejs",
     "options": {"publicKey": "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec"}}
  ]
}`

func TestGetSite_JSON(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.Default())

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, defaultSiteJSON, rec.Body.String())
}

func TestGetSite_YAML(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.Default())

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site?format=yaml")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "siteName: Static E-Shop")
	assert.Contains(t, rec.Body.String(), "CommercejsProducts: /products/:id")
}

func TestGetSite_UnsupportedFormat(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.Default())

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site?format=toml")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestGetTemplates(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.Default())

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/templates")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"CommercejsProducts": "/products/:id"}`, rec.Body.String())
}

func TestGetTemplates_Empty(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.NewSiteConfig(models.SiteDocument{SiteName: "Bare"}))

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/templates")
	assert.JSONEq(t, `{}`, rec.Body.String())

	d.site.EXPECT().Current(gomock.Any()).Return(models.NewSiteConfig(models.SiteDocument{SiteName: "Bare"}))
	rec = serveRequest(d.handler.Init(), http.MethodGet, "/api/site/plugins")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPlugins_Ordered(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Current(gomock.Any()).Return(models.Default())

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/plugins")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
	  {"use": "gridsome-plugin-tailwindcss"},
	  {"use": "gridsome-source-commercejs",
	   "options": {"publicKey": "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec"}}
	]`, rec.Body.String())
}

func TestGetRoutes(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Routes(gomock.Any()).Return([]models.RouteInfo{
		{ContentType: "CommercejsProducts", Template: "/products/:id", Params: []string{"id"}},
	}, nil)

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/routes")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"contentType":"CommercejsProducts","template":"/products/:id","params":["id"]}]`, rec.Body.String())
}

func TestGetRoutes_Error(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().Routes(gomock.Any()).Return(nil, service.ErrInvalidRoute)

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/routes")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestResolveRoute(t *testing.T) {
	d := newTestDeps(t)
	d.site.EXPECT().
		ResolveRoute(gomock.Any(), "CommercejsProducts", map[string]string{"id": "prod_42"}).
		Return(models.ResolvedRoute{
			ContentType: "CommercejsProducts",
			Template:    "/products/:id",
			Path:        "/products/prod_42",
		}, nil)

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/routes/CommercejsProducts?id=prod_42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"contentType":"CommercejsProducts","template":"/products/:id","path":"/products/prod_42"}`, rec.Body.String())
}

func TestResolveRoute_AmbiguousParam(t *testing.T) {
	d := newTestDeps(t)

	rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/routes/CommercejsProducts?id=1&id=2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveRoute_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown content type", fmt.Errorf("%w: %q", service.ErrUnknownContentType, "Post"), http.StatusNotFound},
		{"missing param", fmt.Errorf("%w: %w", service.ErrRouteParams, route.ErrMissingParam), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.site.EXPECT().ResolveRoute(gomock.Any(), "Post", gomock.Any()).Return(models.ResolvedRoute{}, tt.err)

			rec := serveRequest(d.handler.Init(), http.MethodGet, "/api/site/routes/Post")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrEmptyContentType))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
