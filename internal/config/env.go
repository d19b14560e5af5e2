// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment via caarlos0/env, driven by the
// `env` tags on [StructuredConfig] (ADDRESS, ADDRESSES, DATABASE_URI, ...).
// Environment values are the highest-priority source in the merge chain.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
