package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Gateway Gateway `yaml:"gateway"`
	Output  Output  `yaml:"output"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

// Gateway configures the remote agent gateway.
type Gateway struct {
	BaseURL        string `yaml:"base_url"`
	ContentAgentID string `yaml:"content_agent_id"`
	GraphicAgentID string `yaml:"graphic_agent_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the gateway request timeout.
func (g Gateway) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

type Output struct {
	DataDir string `yaml:"data_dir"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for mcc.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "mcc")
}

// DataDir returns the XDG data directory for mcc.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "mcc")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/mcc/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'mcc init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Gateway: Gateway{
			BaseURL:        "http://localhost:9400",
			ContentAgentID: "69977584321b34f0b20370ef",
			GraphicAgentID: "699775923b886b94bdf0775e",
			TimeoutSeconds: 120,
		},
		Server:  Server{Port: 8000},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDataDir returns the effective data directory from config or XDG default.
func (c *Config) GetDataDir() string {
	if c.Output.DataDir != "" {
		return c.Output.DataDir
	}
	return DataDir()
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
