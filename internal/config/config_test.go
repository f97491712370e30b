package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Gateway.BaseURL == "" {
		t.Error("expected gateway base_url to be populated")
	}
	if cfg.Gateway.ContentAgentID == "" || cfg.Gateway.GraphicAgentID == "" {
		t.Error("expected both agent IDs to be populated")
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Server.Port)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
gateway:
  base_url: https://agents.example.com
server:
  port: 9000
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Gateway.BaseURL != "https://agents.example.com" {
		t.Errorf("expected overridden base_url, got %q", cfg.Gateway.BaseURL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	// Defaults should still be set for unspecified fields
	if cfg.Gateway.TimeoutSeconds != 120 {
		t.Errorf("expected default timeout 120, got %d", cfg.Gateway.TimeoutSeconds)
	}
	if cfg.Gateway.ContentAgentID == "" {
		t.Error("expected default content agent ID")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected INFO log level, got %q", cfg.Logging.Level)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	if _, err := ResolveConfigPath("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}
