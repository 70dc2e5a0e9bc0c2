// Package config handles loading the daybook config.toml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"daybook/internal/paths"
)

// Config represents the config.toml configuration file.
type Config struct {
	// StateDir overrides where daybook keeps its state file.
	StateDir string `toml:"state-dir"`

	// DefaultList is the list new tasks land in when no list is named.
	DefaultList string `toml:"default-list"`

	// Editor overrides $EDITOR for `daybook edit`.
	Editor string `toml:"editor"`
}

// Load reads the global config file. Returns an empty config if the file
// does not exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.StateDir = strings.TrimSpace(cfg.StateDir)
	cfg.DefaultList = strings.TrimSpace(cfg.DefaultList)
	cfg.Editor = strings.TrimSpace(cfg.Editor)
	return &cfg, nil
}
