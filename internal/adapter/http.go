// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/internal/utils"
	"github.com/MKhiriev/static-eshop/models"
)

// HTTPSiteSource fetches site documents with a resty client.
type HTTPSiteSource struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSiteSource builds a source whose requests are bounded by
// cfg.RequestTimeout.
func NewHTTPSiteSource(cfg config.Adapter, log *logger.Logger) *HTTPSiteSource {
	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetHeader("Accept", "application/json, application/yaml;q=0.9")

	return &HTTPSiteSource{
		client: client,
		logger: &logger.Logger{Logger: log.With().Str("component", "adapter").Logger()},
	}
}

// FetchSite implements [SiteSource].
func (h *HTTPSiteSource) FetchSite(ctx context.Context, rawURL string) (models.SiteDocument, error) {
	u, err := normalizeURL(rawURL)
	if err != nil {
		return models.SiteDocument{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(u)
	if err != nil {
		return models.SiteDocument{}, fmt.Errorf("fetch site document: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Int("status", resp.StatusCode()).
			Str("url", u).
			Msg("remote source returned an error")
		return models.SiteDocument{}, err
	}

	format := formatOf(resp.Header().Get("Content-Type"), u)
	doc, err := config.DecodeSite(bytes.NewReader(resp.Body()), format)
	if err != nil {
		return models.SiteDocument{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	h.logger.Debug().
		Str("url", u).
		Str("format", string(format)).
		Dur("took", resp.Time()).
		Msg("site document fetched")

	return doc, nil
}

// normalizeURL accepts a bare host/path and defaults the scheme to http.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty url", config.ErrInvalidSiteConfigs)
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", config.ErrInvalidSiteConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", config.ErrInvalidSiteConfigs, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: url %q has no host", config.ErrInvalidSiteConfigs, raw)
	}

	return u.String(), nil
}

// formatOf picks the decoder from the response media type, then from the
// URL extension. JSON is the fallback.
func formatOf(contentType, rawURL string) config.Format {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.Contains(mt, "yaml"):
			return config.FormatYAML
		case strings.Contains(mt, "json"):
			return config.FormatJSON
		}
	}

	if u, err := url.Parse(rawURL); err == nil {
		if f, err := config.FormatFromPath(path.Base(u.Path)); err == nil {
			return f
		}
	}

	return config.FormatJSON
}
