// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for API responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "application/yaml", "text/plain"))

	router.Route("/api/site", func(r chi.Router) {
		r.Get("/", h.getSite)
		r.Get("/templates", h.getTemplates)
		r.Get("/plugins", h.getPlugins)
		r.Get("/routes", h.getRoutes)
		r.Get("/routes/{contentType}", h.resolveRoute)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
