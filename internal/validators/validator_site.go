// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/static-eshop/internal/route"
	"github.com/MKhiriev/static-eshop/models"
)

const (
	FieldSiteName  = "siteName"
	FieldTemplates = "templates"
	FieldPlugins   = "plugins"
)

// SiteValidator checks the structural well-formedness of a site
// configuration. Every violation is reported; the returned error joins them.
type SiteValidator struct {
}

func NewSiteValidator() Validator {
	return &SiteValidator{}
}

func (v *SiteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SiteDocument:
		return v.validateSiteDocument(ctx, value, fields...)
	case *models.SiteDocument:
		return v.validateSiteDocument(ctx, *value, fields...)

	case models.SiteConfig:
		return v.validateSiteDocument(ctx, value.Document(), fields...)
	case *models.SiteConfig:
		return v.validateSiteDocument(ctx, value.Document(), fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SiteValidator) validateSiteDocument(_ context.Context, doc models.SiteDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSiteName, FieldTemplates, FieldPlugins}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldSiteName:
			if strings.TrimSpace(doc.SiteName) == "" {
				errs = append(errs, ErrEmptySiteName)
			}
		case FieldTemplates:
			errs = append(errs, validateTemplates(doc.Templates)...)
		case FieldPlugins:
			errs = append(errs, validatePlugins(doc.Plugins)...)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return errors.Join(errs...)
}

func validateTemplates(templates map[string]string) []error {
	var errs []error

	// sorted for a stable error order
	for _, contentType := range sortedKeys(templates) {
		raw := templates[contentType]
		if strings.TrimSpace(contentType) == "" {
			errs = append(errs, fmt.Errorf("%w (template %q)", ErrEmptyContentType, raw))
			continue
		}

		tmpl, err := route.Parse(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("templates.%s: %w: %w", contentType, ErrInvalidTemplate, err))
			continue
		}
		if !tmpl.HasParams() {
			errs = append(errs, fmt.Errorf("templates.%s: %w: %q", contentType, ErrTemplateNoParams, raw))
		}
	}

	return errs
}

func validatePlugins(plugins []models.PluginDocument) []error {
	var errs []error
	seen := make(map[string]int, len(plugins))

	for i, p := range plugins {
		if strings.TrimSpace(p.Use) == "" {
			errs = append(errs, fmt.Errorf("plugins[%d]: %w", i, ErrEmptyPluginUse))
			continue
		}
		if first, dup := seen[p.Use]; dup {
			errs = append(errs, fmt.Errorf("plugins[%d]: %w: %q (first at plugins[%d])", i, ErrDuplicatePlugin, p.Use, first))
		} else {
			seen[p.Use] = i
		}

		for _, name := range sortedKeys(p.Options) {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, fmt.Errorf("plugins[%d].options: %w", i, ErrEmptyOptionName))
				continue
			}
			if !isPrimitive(p.Options[name]) {
				errs = append(errs, fmt.Errorf("plugins[%d].options.%s: %w", i, name, ErrNonPrimitiveOption))
			}
		}
	}

	return errs
}

func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
