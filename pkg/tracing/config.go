package tracing

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls OpenTelemetry tracing. Tracing is off unless Enabled is
// set and Endpoint is non-empty.
type Config struct {
	Enabled     bool    `toml:"enabled" env:"ENABLED"`
	Endpoint    string  `toml:"endpoint" env:"ENDPOINT"`
	ServiceName string  `toml:"service_name" env:"SERVICE_NAME"`
	SampleRatio float64 `toml:"sample_ratio" env:"SAMPLE_RATIO"`
}

// Active reports whether Setup will install an exporting provider.
func (c *Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

// Finalize applies defaults, reads variables named envPrefix+field (for
// example TRACING_ENDPOINT), and validates.
func (c *Config) Finalize(envPrefix string) error {
	c.loadDefaults()
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.ServiceName != "" {
		c.ServiceName = overlay.ServiceName
	}
	if overlay.SampleRatio != 0 {
		c.SampleRatio = overlay.SampleRatio
	}
}

func (c *Config) loadDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "vector2"
	}
	if c.SampleRatio == 0 {
		c.SampleRatio = 1
	}
}

func (c *Config) validate() error {
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("invalid sample_ratio: %v (must be between 0 and 1)", c.SampleRatio)
	}
	return nil
}
