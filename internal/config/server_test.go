package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/vector2/internal/config"
)

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{
		Host:         "localhost",
		Port:         8080,
		ReadTimeout:  "30s",
		WriteTimeout: "30s",
	}

	base.Merge(&config.ServerConfig{
		Port:         9090,
		WriteTimeout: "60s",
	})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want %q (should not change)", base.Host, "localhost")
	}
	if base.Port != 9090 {
		t.Errorf("Port = %d, want %d (should merge)", base.Port, 9090)
	}
	if base.ReadTimeout != "30s" {
		t.Errorf("ReadTimeout = %q, want %q (should not change)", base.ReadTimeout, "30s")
	}
	if base.WriteTimeout != "60s" {
		t.Errorf("WriteTimeout = %q, want %q (should merge)", base.WriteTimeout, "60s")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{"default", "0.0.0.0", 8080, "0.0.0.0:8080"},
		{"localhost", "localhost", 3000, "localhost:3000"},
		{"ipv6", "::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ServerConfig{Host: tt.host, Port: tt.port}
			if addr := cfg.Addr(); addr != tt.expected {
				t.Errorf("Addr() = %q, want %q", addr, tt.expected)
			}
		})
	}
}

func TestServerConfig_Finalize(t *testing.T) {
	cfg := &config.ServerConfig{}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"ReadTimeout", cfg.ReadTimeoutDuration(), 30 * time.Second},
		{"WriteTimeout", cfg.WriteTimeoutDuration(), 30 * time.Second},
		{"IdleTimeout", cfg.IdleTimeoutDuration(), 120 * time.Second},
		{"ShutdownTimeout", cfg.ShutdownTimeoutDuration(), 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.MaxHeaderBytes() != 1000000 {
		t.Errorf("MaxHeaderBytes() = %d, want 1000000", cfg.MaxHeaderBytes())
	}
}

func TestServerConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ServerConfig
	}{
		{"port negative", config.ServerConfig{Port: -1}},
		{"port too high", config.ServerConfig{Port: 65536}},
		{"bad read timeout", config.ServerConfig{ReadTimeout: "fast"}},
		{"bad header size", config.ServerConfig{MaxHeaderSize: "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}
