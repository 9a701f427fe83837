package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Server struct {
		Port          int
		MaxConcurrent int // YAML key: "max_concurrent"
	}
	Grid struct {
		Width  int
		Height int
	}
}

// LoadFromFile loads config from a YAML file to a Config struct, applies defaults, and validates required fields.
func LoadFromFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := parseYAML(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets safe defaults for fields left unset in the file.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxConcurrent == 0 {
		cfg.Server.MaxConcurrent = 64
	}
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = 100
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = 100
	}
}

// validate checks required fields and basic ranges.
func (c *Config) validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, "server.port must be in 1..65535")
	}
	if c.Server.MaxConcurrent <= 0 {
		problems = append(problems, "server.max_concurrent must be positive")
	}
	if c.Grid.Width <= 0 {
		problems = append(problems, "grid.width must be positive")
	}
	if c.Grid.Height <= 0 {
		problems = append(problems, "grid.height must be positive")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
