// Package config handles command-line configuration from environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration of the oura command
type Config struct {
	AccessToken string        `env:"OURA_ACCESS_TOKEN,required,notEmpty"`
	BaseURL     string        `env:"OURA_BASE_URL" envDefault:"https://api.ouraring.com"`
	Timeout     time.Duration `env:"OURA_TIMEOUT" envDefault:"30s"`
	Debug       bool          `env:"OURA_DEBUG"`
}

// Load reads configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("OURA_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}
