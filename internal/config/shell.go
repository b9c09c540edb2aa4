package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/JaimeStill/vector2/pkg/web"
)

// ShellConfig configures the console's page shell.
type ShellConfig struct {
	// BasePath is the single-segment prefix the shell is mounted under.
	BasePath string             `toml:"base_path" env:"SHELL_BASE_PATH"`
	Title    string             `toml:"title" env:"SHELL_TITLE"`
	NotFound web.NotFoundPolicy `toml:"not_found" env:"SHELL_NOT_FOUND"`
}

func (c *ShellConfig) Finalize() error {
	c.loadDefaults()
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return c.validate()
}

func (c *ShellConfig) Merge(overlay *ShellConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.NotFound != "" {
		c.NotFound = overlay.NotFound
	}
}

func (c *ShellConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.Title == "" {
		c.Title = "Vector2"
	}
	if c.NotFound == "" {
		c.NotFound = web.NotFoundPage
	}
}

func (c *ShellConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || len(c.BasePath) < 2 || strings.Contains(c.BasePath[1:], "/") {
		return fmt.Errorf("invalid base_path %q: must be a single segment such as /app", c.BasePath)
	}
	return c.NotFound.Validate()
}
