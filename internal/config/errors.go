// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates an unusable listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates an invalid outbound client timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSiteConfigs indicates malformed site sources or overrides
	// (for example a non-HTTP config URL or a plugin option key without a dot).
	ErrInvalidSiteConfigs = errors.New("invalid site source configuration")
	// ErrInvalidAppConfigs indicates invalid process-wide settings such as an
	// unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// Errors returned while loading the site configuration.
var (
	// ErrUnsupportedFormat is returned for files that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported site configuration format")
	// ErrTrailingData is returned when input continues after the site document.
	ErrTrailingData = errors.New("unexpected data after site configuration document")
	// ErrUnknownPlugin is returned when an option override names a plugin the
	// configuration does not declare.
	ErrUnknownPlugin = errors.New("option override for undeclared plugin")
	// ErrInvalidSite wraps validation failures of the loaded site configuration.
	ErrInvalidSite = errors.New("invalid site configuration")
	// ErrNoRemoteSource is returned when a config URL is set but the loader has
	// no remote source to fetch it with.
	ErrNoRemoteSource = errors.New("config URL set but no remote source configured")
)
