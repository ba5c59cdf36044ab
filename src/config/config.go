package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lost-woods/rngfacade/src/source"
)

// Source kinds accepted by RNG_SOURCE.
const (
	SourceSeeded = "seeded"
	SourceChaCha = "chacha"
	SourceSerial = "serial"
	SourceOS     = "os"
)

type Config struct {
	Port   string `env:"PORT" envDefault:"777"`
	APIKey string `env:"API_KEY"`

	Source string `env:"RNG_SOURCE" envDefault:"os"`
	// Seed is only read by the seeded and chacha sources. Zero means pick one
	// from host entropy at startup.
	Seed uint64 `env:"RNG_SEED"`

	HealthIntervalMs int `env:"RNG_HEALTH_INTERVAL" envDefault:"10000"`

	Serial source.SerialConfig
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) HealthInterval() time.Duration {
	return time.Duration(c.HealthIntervalMs) * time.Millisecond
}

func (c Config) validate() error {
	switch c.Source {
	case SourceSeeded, SourceChaCha, SourceSerial, SourceOS:
	default:
		return fmt.Errorf("invalid RNG_SOURCE: %q", c.Source)
	}
	if c.HealthIntervalMs <= 0 {
		return fmt.Errorf("invalid RNG_HEALTH_INTERVAL: %d", c.HealthIntervalMs)
	}
	return nil
}
