// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries everything the CLI needs to wire the engine. The remote
// mirror fields are optional; leaving them empty runs fully local.
type Config struct {
	DBPath        string `env:"MYTHOS_DB_PATH"`
	RemoteBaseURL string `env:"MYTHOS_REMOTE_URL"`
	RemoteToken   string `env:"MYTHOS_REMOTE_TOKEN"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
