package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTable is the ranking archive table used when the config does not
// name one.
const DefaultTable = "ad_rankings"

// ExportConfig holds the destination settings for archiving rankings.
type ExportConfig struct {
	DatabaseURL string `yaml:"database_url"`
	Table       string `yaml:"table,omitempty"`
}

// Load reads an export config from a YAML file.
func Load(path string) (*ExportConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ExportConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Resolve loads the export config from path when given, otherwise falls back
// to the DATABASE_URL environment variable. A missing database URL is an
// error either way.
func Resolve(path string) (*ExportConfig, error) {
	var cfg *ExportConfig
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &ExportConfig{DatabaseURL: os.Getenv("DATABASE_URL")}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL required (set database_url in config or DATABASE_URL)")
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	return cfg, nil
}
