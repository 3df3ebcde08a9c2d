// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environment variables according to the `env` /
// `envPrefix` tags on [StructuredConfig] and its nested types. A conversion
// failure (e.g. a malformed duration) is returned wrapped.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
