// Package config loads boardgen's BOARDGEN_* environment defaults and
// reports fatal startup errors.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target's `env`-tagged fields from BOARDGEN_* variables,
// falling back to their `envDefault` values. Command line flags are applied
// on top by the caller.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
