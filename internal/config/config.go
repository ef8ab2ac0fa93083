// Package config loads the optional YAML configuration file that mirrors
// the generator's command-line flags. Flags set explicitly always win over
// file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPattern matches the documentation fragment files picked up when no
// pattern is configured.
const DefaultPattern = "*.rst"

// Config holds generation settings read from a .docstub.yml file.
type Config struct {
	// Source is the directory scanned for documentation fragments.
	Source string `yaml:"source"`
	// Dest is the directory the stub tree is written into.
	Dest string `yaml:"dest"`
	// Pattern is the fragment filename glob.
	Pattern string `yaml:"pattern"`
	// Quiet suppresses per-module progress output.
	Quiet bool `yaml:"quiet"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:  ".",
		Dest:    "./stubs",
		Pattern: DefaultPattern,
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, filling defaults for unset fields.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Source == "" {
		cfg.Source = "."
	}

	if cfg.Dest == "" {
		cfg.Dest = "./stubs"
	}

	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
}
