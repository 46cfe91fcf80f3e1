// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. Every malformed variable is
// reported, not only the first one.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{})
	if err == nil {
		return nil
	}

	var aggregated env.AggregateError
	if errors.As(err, &aggregated) && len(aggregated.Errors) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidEnv, errors.Join(aggregated.Errors...))
	}
	return fmt.Errorf("%w: %w", ErrInvalidEnv, err)
}
