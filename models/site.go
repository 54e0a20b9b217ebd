// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the immutable settings record handed to the static-site
// framework at build start.
//
// All fields are unexported; getters return copies, so a SiteConfig value
// never changes after [NewSiteConfig] returns it. The zero value is an empty
// configuration and is not valid.
type SiteConfig struct {
	siteName  string
	templates map[string]string
	plugins   []PluginSpec
}

// PluginSpec is one plugin registration: a plugin identifier plus an optional
// flat options mapping passed verbatim to the plugin's initializer.
type PluginSpec struct {
	use     string
	options map[string]any
}

// SiteDocument is the mutable, serialisable form of [SiteConfig]. Key names
// follow the framework's spelling.
type SiteDocument struct {
	SiteName  string            `json:"siteName" yaml:"siteName"`
	Templates map[string]string `json:"templates,omitempty" yaml:"templates,omitempty"`
	Plugins   []PluginDocument  `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// PluginDocument is the serialisable form of [PluginSpec].
type PluginDocument struct {
	Use     string         `json:"use" yaml:"use"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// NewSiteConfig freezes doc into an immutable [SiteConfig]. Maps and slices
// are deep-copied; integer option values are normalised to float64 so JSON
// and YAML sources produce equal values.
func NewSiteConfig(doc SiteDocument) SiteConfig {
	cfg := SiteConfig{
		siteName:  doc.SiteName,
		templates: cloneTemplates(doc.Templates),
	}

	if len(doc.Plugins) > 0 {
		cfg.plugins = make([]PluginSpec, 0, len(doc.Plugins))
		for _, p := range doc.Plugins {
			cfg.plugins = append(cfg.plugins, NewPluginSpec(p.Use, p.Options))
		}
	}

	return cfg
}

// NewPluginSpec builds a [PluginSpec]. A nil or empty options map means the
// plugin takes no options.
func NewPluginSpec(use string, options map[string]any) PluginSpec {
	return PluginSpec{
		use:     use,
		options: cloneOptions(options),
	}
}

// SiteName returns the display name of the site.
func (c SiteConfig) SiteName() string {
	return c.siteName
}

// Templates returns a copy of the content type to route template mapping.
func (c SiteConfig) Templates() map[string]string {
	return cloneTemplates(c.templates)
}

// Template returns the route template registered for contentType.
func (c SiteConfig) Template(contentType string) (string, bool) {
	tmpl, ok := c.templates[contentType]
	return tmpl, ok
}

// ContentTypes returns the configured content type names in sorted order.
func (c SiteConfig) ContentTypes() []string {
	return slices.Sorted(maps.Keys(c.templates))
}

// Plugins returns the plugin registrations in registration order.
func (c SiteConfig) Plugins() []PluginSpec {
	return slices.Clone(c.plugins)
}

// Plugin returns the plugin registered under use, if any.
func (c SiteConfig) Plugin(use string) (PluginSpec, bool) {
	for _, p := range c.plugins {
		if p.use == use {
			return p, true
		}
	}
	return PluginSpec{}, false
}

// Document returns a deep copy of c in its mutable, serialisable form.
func (c SiteConfig) Document() SiteDocument {
	doc := SiteDocument{
		SiteName:  c.siteName,
		Templates: cloneTemplates(c.templates),
	}

	if len(c.plugins) > 0 {
		doc.Plugins = make([]PluginDocument, 0, len(c.plugins))
		for _, p := range c.plugins {
			doc.Plugins = append(doc.Plugins, p.Document())
		}
	}

	return doc
}

// Equal reports whether c and other hold the same values.
func (c SiteConfig) Equal(other SiteConfig) bool {
	return reflect.DeepEqual(c.Document(), other.Document())
}

// IsZero reports whether c is the zero value.
func (c SiteConfig) IsZero() bool {
	return c.siteName == "" && len(c.templates) == 0 && len(c.plugins) == 0
}

func (c SiteConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

func (c *SiteConfig) UnmarshalJSON(b []byte) error {
	var doc SiteDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*c = NewSiteConfig(doc)
	return nil
}

func (c SiteConfig) MarshalYAML() (any, error) {
	return c.Document(), nil
}

func (c *SiteConfig) UnmarshalYAML(value *yaml.Node) error {
	var doc SiteDocument
	if err := value.Decode(&doc); err != nil {
		return err
	}
	*c = NewSiteConfig(doc)
	return nil
}

// Use returns the plugin identifier.
func (p PluginSpec) Use() string {
	return p.use
}

// Options returns a copy of the plugin options, or nil when the plugin takes
// none.
func (p PluginSpec) Options() map[string]any {
	return cloneOptions(p.options)
}

// Option returns a single option value.
func (p PluginSpec) Option(name string) (any, bool) {
	v, ok := p.options[name]
	return v, ok
}

// HasOptions reports whether the plugin was registered with options.
func (p PluginSpec) HasOptions() bool {
	return len(p.options) > 0
}

// Document returns p in its serialisable form.
func (p PluginSpec) Document() PluginDocument {
	return PluginDocument{
		Use:     p.use,
		Options: cloneOptions(p.options),
	}
}

func cloneTemplates(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

func cloneOptions(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case int:
		return float64(value)
	case int8:
		return float64(value)
	case int16:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint8:
		return float64(value)
	case uint16:
		return float64(value)
	case uint32:
		return float64(value)
	case uint64:
		return float64(value)
	case float32:
		return float64(value)
	case map[string]any:
		return cloneOptions(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return value
	}
}
