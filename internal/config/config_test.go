package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/vector2/internal/config"
	"github.com/JaimeStill/vector2/pkg/logging"
	"github.com/JaimeStill/vector2/pkg/web"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const baseTOML = `
version = "1.2.3"
shutdown_timeout = "10s"

[server]
host = "127.0.0.1"
port = 9000
max_header_size = "64KB"

[logging]
level = "debug"
format = "json"

[shell]
base_path = "/console"
title = "Vector2 Console"

[cors]
enabled = true
origins = ["http://localhost:3000"]
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", baseTOML)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", cfg.Version)
	}
	if cfg.ShutdownTimeoutDuration() != 10*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 10s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("Server.Addr() = %q, want 127.0.0.1:9000", cfg.Server.Addr())
	}
	if cfg.Server.MaxHeaderBytes() != 64000 {
		t.Errorf("Server.MaxHeaderBytes() = %d, want 64000", cfg.Server.MaxHeaderBytes())
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Shell.BasePath != "/console" {
		t.Errorf("Shell.BasePath = %q, want /console", cfg.Shell.BasePath)
	}
	if cfg.Shell.NotFound != web.NotFoundPage {
		t.Errorf("Shell.NotFound = %q, want default page", cfg.Shell.NotFound)
	}
	if !cfg.CORS.Enabled || len(cfg.CORS.Origins) != 1 {
		t.Errorf("CORS = %+v, want enabled with one origin", cfg.CORS)
	}
}

func TestLoadFile_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", baseTOML)
	writeFile(t, dir, "config.staging.toml", `
[server]
port = 9100

[shell]
not_found = "blank"
`)

	t.Setenv(config.EnvServiceEnv, "staging")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100 (overlay)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1 (base)", cfg.Server.Host)
	}
	if cfg.Shell.NotFound != web.NotFoundBlank {
		t.Errorf("Shell.NotFound = %q, want blank (overlay)", cfg.Shell.NotFound)
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env() = %q, want staging", cfg.Env())
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", baseTOML)

	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("SHELL_NOT_FOUND", "blank")
	t.Setenv("LOGGING_FORMAT", "text")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_ENDPOINT", "http://collector:4318")
	t.Setenv(config.EnvServiceShutdownTimeout, "5s")

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("Server.Port = %d, want 9200", cfg.Server.Port)
	}
	if cfg.Shell.NotFound != web.NotFoundBlank {
		t.Errorf("Shell.NotFound = %q, want blank", cfg.Shell.NotFound)
	}
	if cfg.Logging.Format != logging.FormatText {
		t.Errorf("Logging.Format = %q, want text", cfg.Logging.Format)
	}
	if !cfg.Tracing.Active() {
		t.Error("Tracing.Active() = false, want true")
	}
	if cfg.ShutdownTimeoutDuration() != 5*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 5s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[server\nport = "},
		{"invalid shutdown timeout", `shutdown_timeout = "soon"`},
		{"invalid port", "[server]\nport = 70000"},
		{"invalid log level", "[logging]\nlevel = \"loud\""},
		{"invalid not found policy", "[shell]\nnot_found = \"ignore\""},
		{"multi segment base path", "[shell]\nbase_path = \"/app/v1\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "config.toml", tt.content)
			if _, err := config.LoadFile(path); err == nil {
				t.Error("LoadFile() succeeded, want error")
			}
		})
	}

	if _, err := config.LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadFile() of missing file succeeded, want error")
	}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Shell.BasePath != "/app" {
		t.Errorf("Shell.BasePath = %q, want /app", cfg.Shell.BasePath)
	}
	if cfg.Shell.NotFound != web.NotFoundPage {
		t.Errorf("Shell.NotFound = %q, want page", cfg.Shell.NotFound)
	}
	if cfg.Tracing.Active() {
		t.Error("Tracing.Active() = true for defaults")
	}
}
