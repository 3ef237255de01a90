// Package config loads the optional subview.yaml project file.
//
// The file keeps invocation settings out of Makefiles and go:generate
// lines:
//
//	packages:
//	  - ./...
//	dry_run: false
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a project file when no -config
// flag is given.
const DefaultPath = "subview.yaml"

// Config holds the tool's project settings.
type Config struct {
	// Packages lists Go package patterns to scan for subview declarations.
	Packages []string `yaml:"packages"`

	// DryRun prints generated files to stdout instead of writing them.
	DryRun bool `yaml:"dry_run,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML project file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"./..."}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
