// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"

	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/internal/validators"
	"github.com/MKhiriev/static-eshop/models"
)

//go:generate mockgen -source=loader.go -destination=../mock/remote_source_mock.go -package=mock

// RemoteSource fetches a site document from a URL.
type RemoteSource interface {
	FetchSite(ctx context.Context, url string) (models.SiteDocument, error)
}

// Loader produces the immutable site configuration from the sources named
// in [Site].
//
// Layers, later ones overriding earlier non-zero values:
//  1. the built-in configuration, only when neither FilePath nor URL is set
//  2. the file at FilePath
//  3. the document at URL
//  4. Name, Templates and PluginOptions overrides
//
// The result is validated before it is frozen.
type Loader struct {
	cfg       Site
	remote    RemoteSource
	validator validators.Validator
	logger    *logger.Logger
}

// NewLoader builds a [Loader]. remote may be nil when cfg.URL is empty.
func NewLoader(cfg Site, remote RemoteSource, logger *logger.Logger) *Loader {
	return &Loader{
		cfg:       cfg,
		remote:    remote,
		validator: validators.NewSiteValidator(),
		logger:    logger,
	}
}

// FilePath returns the site file the loader reads, if any.
func (l *Loader) FilePath() string {
	return l.cfg.FilePath
}

// Load runs every layer and returns the validated, frozen configuration.
func (l *Loader) Load(ctx context.Context) (models.SiteConfig, error) {
	doc, err := newSiteBuilder().
		withBuiltin(l.cfg).
		withFile(l.cfg.FilePath).
		withRemote(ctx, l.remote, l.cfg.URL).
		build()
	if err != nil {
		return models.SiteConfig{}, err
	}

	if err := applyOverrides(&doc, l.cfg); err != nil {
		return models.SiteConfig{}, err
	}

	if err := l.validator.Validate(ctx, doc); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrInvalidSite, err)
	}

	cfg := models.NewSiteConfig(doc)
	l.logger.Debug().
		Str("site_name", cfg.SiteName()).
		Int("templates", len(doc.Templates)).
		Int("plugins", len(doc.Plugins)).
		Str("file", l.cfg.FilePath).
		Str("url", l.cfg.URL).
		Msg("site configuration loaded")

	return cfg, nil
}

type siteBuilder struct {
	docs []*models.SiteDocument
	err  error
}

func newSiteBuilder() *siteBuilder {
	return &siteBuilder{
		docs: make([]*models.SiteDocument, 0, 2),
	}
}

func (b *siteBuilder) build() (models.SiteDocument, error) {
	if b.err != nil {
		return models.SiteDocument{}, fmt.Errorf("error occured during loading site config: %w", b.err)
	}

	doc := new(models.SiteDocument)
	for _, d := range b.docs {
		if err := mergo.Merge(doc, d, mergo.WithOverride); err != nil {
			return models.SiteDocument{}, fmt.Errorf("error merging site configs: %w", err)
		}
	}

	return *doc, nil
}

func (b *siteBuilder) withBuiltin(cfg Site) *siteBuilder {
	if cfg.FilePath != "" || cfg.URL != "" {
		return b
	}

	doc := models.DefaultDocument()
	b.docs = append(b.docs, &doc)
	return b
}

func (b *siteBuilder) withFile(path string) *siteBuilder {
	if path == "" {
		return b
	}

	doc, err := LoadFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.docs = append(b.docs, &doc)
	return b
}

func (b *siteBuilder) withRemote(ctx context.Context, remote RemoteSource, url string) *siteBuilder {
	if url == "" {
		return b
	}
	if remote == nil {
		b.err = errors.Join(b.err, ErrNoRemoteSource)
		return b
	}

	doc, err := remote.FetchSite(ctx, url)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error fetching site config: %w", err))
		return b
	}

	b.docs = append(b.docs, &doc)
	return b
}

// applyOverrides writes the per-key overrides into doc. Plugin order is never
// changed; an option override for an undeclared plugin is an error.
func applyOverrides(doc *models.SiteDocument, cfg Site) error {
	if cfg.Name != "" {
		doc.SiteName = cfg.Name
	}

	if len(cfg.Templates) > 0 {
		if doc.Templates == nil {
			doc.Templates = make(map[string]string, len(cfg.Templates))
		}
		maps.Copy(doc.Templates, cfg.Templates)
	}

	for key, value := range cfg.PluginOptions {
		plugin, option, ok := splitPluginOption(key)
		if !ok {
			return fmt.Errorf("%w: plugin option key %q", ErrInvalidSiteConfigs, key)
		}

		idx := -1
		for i := range doc.Plugins {
			if doc.Plugins[i].Use == plugin {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownPlugin, plugin)
		}

		if doc.Plugins[idx].Options == nil {
			doc.Plugins[idx].Options = make(map[string]any, 1)
		}
		doc.Plugins[idx].Options[option] = value
	}

	return nil
}
