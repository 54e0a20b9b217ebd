// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable before any
// site source is read.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if err := cfg.Site.validate(); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}

func (s Site) validate() error {
	if s.URL != "" {
		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: config url %q must be an absolute http(s) URL", ErrInvalidSiteConfigs, s.URL)
		}
	}

	if s.FilePath != "" {
		if _, err := FormatFromPath(s.FilePath); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSiteConfigs, err)
		}
	}

	if s.Watch && s.FilePath == "" {
		return fmt.Errorf("%w: watch requires a config file", ErrInvalidSiteConfigs)
	}

	for contentType := range s.Templates {
		if strings.TrimSpace(contentType) == "" {
			return fmt.Errorf("%w: template override with empty content type", ErrInvalidSiteConfigs)
		}
	}

	for key := range s.PluginOptions {
		if _, _, ok := splitPluginOption(key); !ok {
			return fmt.Errorf("%w: plugin option key %q must look like plugin.option", ErrInvalidSiteConfigs, key)
		}
	}

	return nil
}

// splitPluginOption splits "plugin.option" at the last dot.
func splitPluginOption(key string) (plugin, option string, ok bool) {
	i := strings.LastIndex(key, ".")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}
