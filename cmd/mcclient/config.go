package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo client's connection settings, loaded the way the
// teacher loads server.yaml (main.go's Config/loadConfig).
type Config struct {
	ServerAddress string `yaml:"server_address"`
	ServerPort    uint16 `yaml:"server_port"`
	Nickname      string `yaml:"nickname"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mcclient: reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("mcclient: parsing config: %w", err)
	}
	if cfg.ServerPort == 0 {
		cfg.ServerPort = 25565
	}
	return &cfg, nil
}
