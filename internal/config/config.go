// Package config loads warp-journal's optional settings file.
//
// The file is config.yaml in the data directory. Everything in it is an
// override: an absent file, or any absent field, leaves the built-in
// behavior unchanged (environment variables still take priority over
// file settings, matching the locator's evidence ordering).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file name inside the data directory.
const FileName = "config.yaml"

// Config holds the user-adjustable settings.
type Config struct {
	// GamePath overrides game-path discovery, like the GAME_PATH
	// environment variable but persistent. The environment variable
	// wins when both are set.
	GamePath string `yaml:"game_path"`

	// BasePort moves the start of the port probe range. Zero keeps the
	// default base.
	BasePort int `yaml:"base_port"`

	// Debug enables debug-level logging, like the DEBUG environment
	// variable but persistent.
	Debug bool `yaml:"debug"`
}

// Load reads config.yaml from dataDir. A missing file is not an error —
// it yields the zero Config. A malformed or invalid file is reported so
// the CLI can warn and continue with defaults.
func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	return &cfg, nil
}

// validate rejects settings that cannot possibly work rather than
// letting them fail obscurely later.
func (c *Config) validate() error {
	if c.BasePort != 0 && (c.BasePort < 1024 || c.BasePort > 65526) {
		return fmt.Errorf("base_port %d out of range (1024-65526)", c.BasePort)
	}
	return nil
}
