// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ── Default ──────────────────────────────────────────────────────────────────

func TestDefault_Literal(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Static E-Shop", cfg.SiteName())

	tmpl, ok := cfg.Template("CommercejsProducts")
	require.True(t, ok)
	assert.Equal(t, "/products/:id", tmpl)

	plugins := cfg.Plugins()
	require.Len(t, plugins, 2)
	assert.Equal(t, "gridsome-plugin-tailwindcss", plugins[0].Use())
	assert.False(t, plugins[0].HasOptions())
	assert.Nil(t, plugins[0].Options())

	assert.Equal(t, "gridsome-source-commercejs", plugins[1].Use())
	key, ok := plugins[1].Option("publicKey")
	require.True(t, ok)
	assert.Equal(t, "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec", key)
}

func TestDefault_IndependentValues(t *testing.T) {
	assert.True(t, Default().Equal(Default()))
}

// ── immutability ─────────────────────────────────────────────────────────────

func TestSiteConfig_GettersReturnCopies(t *testing.T) {
	cfg := Default()

	templates := cfg.Templates()
	templates["CommercejsProducts"] = "/changed/:id"
	templates["Extra"] = "/extra/:id"

	plugins := cfg.Plugins()
	plugins[0] = NewPluginSpec("replaced", nil)

	opts := cfg.Plugins()[1].Options()
	opts["publicKey"] = "tampered"

	assert.True(t, cfg.Equal(Default()))
}

func TestNewSiteConfig_DetachedFromDocument(t *testing.T) {
	doc := DefaultDocument()
	cfg := NewSiteConfig(doc)

	doc.SiteName = "other"
	doc.Templates["CommercejsProducts"] = "/other/:id"
	doc.Plugins[1].Options["publicKey"] = "other"
	doc.Plugins = append(doc.Plugins, PluginDocument{Use: "extra"})

	assert.True(t, cfg.Equal(Default()))
}

func TestDocument_DetachedFromConfig(t *testing.T) {
	cfg := Default()

	doc := cfg.Document()
	doc.Plugins[1].Options["publicKey"] = "other"

	v, _ := cfg.Plugins()[1].Option("publicKey")
	assert.Equal(t, "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec", v)
}

// ── lookups ──────────────────────────────────────────────────────────────────

func TestSiteConfig_Plugin(t *testing.T) {
	cfg := Default()

	p, ok := cfg.Plugin(PluginCommerceJSource)
	require.True(t, ok)
	assert.True(t, p.HasOptions())

	_, ok = cfg.Plugin("missing")
	assert.False(t, ok)
}

func TestSiteConfig_ContentTypesSorted(t *testing.T) {
	cfg := NewSiteConfig(SiteDocument{
		SiteName: "s",
		Templates: map[string]string{
			"Post":    "/blog/:slug",
			"Author":  "/authors/:id",
			"Product": "/products/:id",
		},
	})

	assert.Equal(t, []string{"Author", "Post", "Product"}, cfg.ContentTypes())
}

func TestSiteConfig_IsZero(t *testing.T) {
	assert.True(t, SiteConfig{}.IsZero())
	assert.False(t, Default().IsZero())
}

func TestNewSiteConfig_EmptyCollectionsNormalised(t *testing.T) {
	cfg := NewSiteConfig(SiteDocument{
		SiteName:  "s",
		Templates: map[string]string{},
		Plugins:   []PluginDocument{{Use: "p", Options: map[string]any{}}},
	})

	assert.Nil(t, cfg.Templates())
	assert.False(t, cfg.Plugins()[0].HasOptions())
	assert.True(t, cfg.Equal(NewSiteConfig(SiteDocument{
		SiteName: "s",
		Plugins:  []PluginDocument{{Use: "p"}},
	})))
}

func TestNewSiteConfig_IntegersNormalised(t *testing.T) {
	cfg := NewSiteConfig(SiteDocument{
		SiteName: "s",
		Plugins:  []PluginDocument{{Use: "p", Options: map[string]any{"limit": 10, "big": int64(3)}}},
	})

	v, _ := cfg.Plugins()[0].Option("limit")
	assert.Equal(t, float64(10), v)
	v, _ = cfg.Plugins()[0].Option("big")
	assert.Equal(t, float64(3), v)
}

// ── round trip ───────────────────────────────────────────────────────────────

var siteComparer = cmp.Comparer(func(a, b SiteConfig) bool { return a.Equal(b) })

func richConfig() SiteConfig {
	return NewSiteConfig(SiteDocument{
		SiteName: "Static E-Shop",
		Templates: map[string]string{
			"CommercejsProducts": "/products/:id",
			"Post":               "/blog/:year/:slug",
		},
		Plugins: []PluginDocument{
			{Use: "gridsome-plugin-tailwindcss"},
			{Use: "gridsome-source-commercejs", Options: map[string]any{
				"publicKey": "pk_test",
				"limit":     25,
				"debug":     true,
				"ratio":     0.5,
				"empty":     nil,
			}},
			{Use: "gridsome-plugin-sitemap"},
		},
	})
}

func TestSiteConfig_JSONRoundTrip(t *testing.T) {
	for name, cfg := range map[string]SiteConfig{"default": Default(), "rich": richConfig()} {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(cfg)
			require.NoError(t, err)

			var got SiteConfig
			require.NoError(t, json.Unmarshal(data, &got))

			if diff := cmp.Diff(cfg, got, siteComparer); diff != "" {
				t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSiteConfig_YAMLRoundTrip(t *testing.T) {
	for name, cfg := range map[string]SiteConfig{"default": Default(), "rich": richConfig()} {
		t.Run(name, func(t *testing.T) {
			data, err := yaml.Marshal(cfg)
			require.NoError(t, err)

			var got SiteConfig
			require.NoError(t, yaml.Unmarshal(data, &got))

			if diff := cmp.Diff(cfg.Document(), got.Document()); diff != "" {
				t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSiteConfig_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "Static E-Shop", raw["siteName"])
	assert.Equal(t, map[string]any{"CommercejsProducts": "/products/:id"}, raw["templates"])

	plugins, ok := raw["plugins"].([]any)
	require.True(t, ok)
	require.Len(t, plugins, 2)
	assert.Equal(t, map[string]any{"use": "gridsome-plugin-tailwindcss"}, plugins[0])
	assert.Equal(t, map[string]any{
		"use":     "gridsome-source-commercejs",
		"options": map[string]any{"publicKey": "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec"},
	}, plugins[1])
}

func TestSiteConfig_UnmarshalJSONInvalid(t *testing.T) {
	var cfg SiteConfig
	err := json.Unmarshal([]byte(`{"siteName": 5}`), &cfg)
	require.Error(t, err)
	assert.True(t, cfg.IsZero())
}
