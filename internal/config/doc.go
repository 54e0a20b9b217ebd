// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the siteconf tool and, through
// [Loader], the site configuration handed to the static-site framework.
//
// Tool settings are assembled from the following sources (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//
// The site configuration is layered from the built-in literal, a JSON or
// YAML file, a remote JSON document and per-key overrides, then validated
// and frozen into an immutable [models.SiteConfig]. [Holder] keeps the
// current value for long-running commands and reloads it when the file
// changes.
package config
