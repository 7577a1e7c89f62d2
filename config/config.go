package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Analyzer struct {
		WebhookURL       string `yaml:"webhookUrl"`
		Mode             string `yaml:"mode"` // "remote" or "simulated"
		TimeoutSec       int    `yaml:"timeoutSec"`
		DefaultUID       string `yaml:"defaultUid"`
		SimulatedDelayMs int    `yaml:"simulatedDelayMs"`
	} `yaml:"analyzer"`

	Rubric struct {
		Version string `yaml:"version"`
	} `yaml:"rubric"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields so a partial config still runs
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Analyzer.Mode == "" {
		c.Analyzer.Mode = "remote"
	}
	if c.Analyzer.TimeoutSec == 0 {
		c.Analyzer.TimeoutSec = 30
	}
	if c.Analyzer.DefaultUID == "" {
		c.Analyzer.DefaultUID = "anonymous-speaker"
	}
	if c.Analyzer.SimulatedDelayMs == 0 {
		c.Analyzer.SimulatedDelayMs = 1200
	}
	if c.Rubric.Version == "" {
		c.Rubric.Version = "bp-rubric-v1"
	}
}
