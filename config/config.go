// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the prdxpr command, read
// from PRDXPR_* environment variables. Command-line flags override it.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls one generator run.
type Config struct {
	Algebras    []string `env:"PRDXPR_ALGEBRAS"     envSeparator:","`
	PrintTables bool     `env:"PRDXPR_PRINT_TABLES" envDefault:"true"`
	Parallel    bool     `env:"PRDXPR_PARALLEL"`
	ConfigFile  string   `env:"PRDXPR_CONFIG"`
	Verbose     bool     `env:"PRDXPR_VERBOSE"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
