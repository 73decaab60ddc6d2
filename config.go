package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/forsight/internal/desugar"
)

// Config is the user-facing configuration. Spelling overrides are for
// front ends that expand loops with a different vocabulary; omitted
// keys keep the defaults.
type Config struct {
	Spellings desugar.Spellings `yaml:"spellings"`
}

func defaultConfig() Config {
	return Config{Spellings: desugar.DefaultSpellings()}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Spellings.Validate(); err != nil {
		return cfg, fmt.Errorf("check %s: %w", path, err)
	}

	return cfg, nil
}
