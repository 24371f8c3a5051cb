// Package config loads process configuration from FESTA_* environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds everything needed to wire the gateway and the local
// snapshot partition.
type Config struct {
	// GatewayURL is the base URL of the hosted backend.
	GatewayURL string `envconfig:"GATEWAY_URL" required:"true"`

	// GatewayKey is the anonymous api key sent with every request.
	GatewayKey string `envconfig:"GATEWAY_KEY" required:"true"`

	// DataDir is where the local snapshot database lives.
	DataDir string `envconfig:"DATA_DIR" default:"."`

	// Debug enables request/response dumping and debug-level logs.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// HTTPTimeoutSeconds bounds every gateway request.
	HTTPTimeoutSeconds int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"30"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FESTA", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("FESTA_HTTP_TIMEOUT_SECONDS must be positive")
	}
	return &cfg, nil
}

// LogLevel returns the zerolog level implied by the config.
func (c *Config) LogLevel() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
