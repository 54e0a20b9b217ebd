// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/static-eshop/internal/app"
	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/internal/utils"
	"github.com/MKhiriev/static-eshop/models"
)

// getSite writes the active configuration. The optional "format" query
// parameter selects json (default) or yaml.
func (h *Handler) getSite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site := h.services.SiteService.Current(r.Context())

	format := config.FormatJSON
	if raw := r.URL.Query().Get("format"); raw != "" {
		f, err := config.ParseFormat(raw)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		format = f
	}

	if format == config.FormatJSON {
		h.writeJSON(w, r, site)
		return
	}

	var buf bytes.Buffer
	if err := config.Encode(&buf, site, format); err != nil {
		log.Err(err).Msg("error encoding site config")
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) getTemplates(w http.ResponseWriter, r *http.Request) {
	templates := h.services.SiteService.Current(r.Context()).Templates()
	if templates == nil {
		templates = map[string]string{}
	}
	h.writeJSON(w, r, templates)
}

func (h *Handler) getPlugins(w http.ResponseWriter, r *http.Request) {
	plugins := h.services.SiteService.Current(r.Context()).Document().Plugins
	if plugins == nil {
		plugins = []models.PluginDocument{}
	}
	h.writeJSON(w, r, plugins)
}

func (h *Handler) getRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.services.SiteService.Routes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, routes)
}

// resolveRoute fills the template of the content type from the path with
// the query parameters: /api/site/routes/CommercejsProducts?id=42.
func (h *Handler) resolveRoute(w http.ResponseWriter, r *http.Request) {
	contentType := strings.TrimSpace(chi.URLParam(r, "contentType"))
	if contentType == "" {
		h.writeError(w, r, ErrEmptyContentType)
		return
	}

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 1 {
			h.writeError(w, r, fmt.Errorf("%w: %q", ErrAmbiguousParam, key))
			return
		}
		params[key] = values[0]
	}

	resolved, err := h.services.SiteService.ResolveRoute(r.Context(), contentType, params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, resolved)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
