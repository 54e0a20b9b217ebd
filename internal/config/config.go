// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level settings container of the siteconf tool.
// It says where the site configuration comes from and how to override it;
// the site configuration itself is produced by [Loader].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Site holds the site configuration sources and per-key overrides.
	Site Site `envPrefix:"SITE_"`

	// Server holds the inspection API listener settings used by `serve`.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound HTTP client used to fetch a
	// remote site document.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// App holds process-wide settings.
	App App `envPrefix:"APP_"`
}

// Site describes where the site configuration is read from and which values
// are overridden on top of it.
type Site struct {
	// FilePath is a JSON or YAML site configuration file.
	// Env: SITE_CONFIG
	FilePath string `env:"CONFIG"`

	// URL points at a JSON site document served over HTTP. It is layered on
	// top of FilePath when both are set.
	// Env: SITE_CONFIG_URL
	URL string `env:"CONFIG_URL"`

	// Name overrides siteName.
	// Env: SITE_NAME
	Name string `env:"NAME"`

	// Templates adds or replaces route templates, keyed by content type.
	// Env: SITE_TEMPLATES="Post=/blog/:slug,CommercejsProducts=/p/:id"
	Templates map[string]string `env:"TEMPLATES" envKeyValSeparator:"="`

	// PluginOptions overrides options of declared plugins. Keys have the form
	// "<plugin>.<option>".
	// Env: SITE_PLUGIN_OPTIONS="gridsome-source-commercejs.publicKey=pk_live"
	PluginOptions map[string]string `env:"PLUGIN_OPTIONS" envKeyValSeparator:"="`

	// Watch enables reloading the file at FilePath when it changes (serve only).
	// Env: SITE_WATCH
	Watch bool `env:"WATCH"`
}

// Server holds network and timeout settings of the inspection API.
type Server struct {
	// HTTPAddress is the "host:port" the API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound HTTP client settings.
type Adapter struct {
	// RequestTimeout bounds a remote site document fetch.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the inspection API. Filled from build info when
	// not set.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultLogLevel              = "info"
)

// GetStructuredConfig loads, merges and validates the tool settings from the
// following sources (later sources override earlier non-zero fields):
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags (values collected by [BindFlags])
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}

// BindFlags registers the site and app flags on fs and returns the config the
// parsed values are written into. The result is only meaningful after fs has
// been parsed.
//
// Flags:
//
//	-c, --config          site configuration file (.json, .yaml, .yml)
//	--config-url          URL of a JSON site document
//	--site-name           siteName override
//	--template            Type=/path/:param route template override (repeatable)
//	--plugin-option       plugin.option=value override (repeatable)
//	--log-level           log level
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVarP(&cfg.Site.FilePath, "config", "c", "", "site configuration file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.Site.URL, "config-url", "", "URL of a JSON site document")
	fs.StringVar(&cfg.Site.Name, "site-name", "", "override siteName")
	fs.StringToStringVar(&cfg.Site.Templates, "template", nil, "route template override Type=/path/:param")
	fs.StringToStringVar(&cfg.Site.PluginOptions, "plugin-option", nil, "plugin option override plugin.option=value")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cfg
}

// BindServerFlags registers the inspection API flags on fs, writing into cfg.
//
// Flags:
//
//	-a, --address         listen address host:port
//	--request-timeout     per-request timeout (e.g. 30s)
//	--watch               reload the site file when it changes
func BindServerFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.VarP(newAddressValue(&cfg.Server.HTTPAddress), "address", "a", "listen address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout (e.g. 30s)")
	fs.BoolVar(&cfg.Site.Watch, "watch", false, "reload the site file when it changes")
}
