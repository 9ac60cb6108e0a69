// Package config holds the CLI configuration, loaded from the environment.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds everything the CLI needs to talk to a Blnk server.
type Config struct {
	APIKey  string        `env:"BLNK_API_KEY"  envDefault:""`
	BaseURL string        `env:"BLNK_BASE_URL" envDefault:"http://localhost:5001"`
	Timeout time.Duration `env:"BLNK_TIMEOUT"  envDefault:"3s"`

	// Caller-side retry of 5xx responses; the SDK itself never retries.
	MaxRetries int           `env:"BLNK_MAX_RETRIES" envDefault:"3"`
	RetryDelay time.Duration `env:"BLNK_RETRY_DELAY" envDefault:"500ms"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.MaxRetries < 0 {
		return errors.New("max retries must be non-negative")
	}
	return nil
}
