package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Errorf("Unexpected default address %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.DefaultThreshold != 30.0 {
		t.Errorf("Expected default threshold 30, got %g", cfg.DefaultThreshold)
	}
	if cfg.DefaultPoints != 8 {
		t.Errorf("Expected default points 8, got %d", cfg.DefaultPoints)
	}
	if cfg.DefaultStrategy != "strategic" {
		t.Errorf("Expected default strategy strategic, got %s", cfg.DefaultStrategy)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected 30s request timeout, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_THRESHOLD", "45.5")
	t.Setenv("DEFAULT_POINTS", "16")
	t.Setenv("DEFAULT_STRATEGY", "grid")
	t.Setenv("REQUEST_TIMEOUT", "10s")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if cfg.DefaultThreshold != 45.5 {
		t.Errorf("Expected threshold 45.5, got %g", cfg.DefaultThreshold)
	}
	if cfg.DefaultPoints != 16 {
		t.Errorf("Expected 16 points, got %d", cfg.DefaultPoints)
	}
	if cfg.DefaultStrategy != "grid" {
		t.Errorf("Expected grid strategy, got %s", cfg.DefaultStrategy)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "not-a-port"},
		{"port out of range", "PORT", "70000"},
		{"zero threshold", "DEFAULT_THRESHOLD", "0"},
		{"negative threshold", "DEFAULT_THRESHOLD", "-5"},
		{"zero points", "DEFAULT_POINTS", "0"},
		{"negative body size", "MAX_REQUEST_BODY_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadFromEnv(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestServerAddress(t *testing.T) {
	cfg := &Config{Host: " 127.0.0.1 ", Port: " 8080 "}
	if got := cfg.ServerAddress(); got != "127.0.0.1:8080" {
		t.Errorf("Expected 127.0.0.1:8080, got %s", got)
	}
}
