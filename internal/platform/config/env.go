// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every tilequest environment variable.
const EnvPrefix = "TILEQUEST_"

// ParseEnv loads configuration from environment variables named by the
// target's env tags with EnvPrefix prepended.
func ParseEnv(target any) error {
	return ParseEnvPrefixed(target, EnvPrefix)
}

// ParseEnvPrefixed loads configuration with prefix prepended to every env tag.
func ParseEnvPrefixed(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
