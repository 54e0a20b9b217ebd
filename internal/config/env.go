// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the SITE_*, SERVER_*, ADAPTER_* and APP_*
// environment variables declared by the `env` and `envPrefix` tags of
// [StructuredConfig].
//
// Map variables use "," between entries and "=" between key and value, so
// route templates containing ':' need no escaping.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
