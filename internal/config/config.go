// Package config loads the optional global YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mydehq/r3name/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "r3name"
	globalFileName = "config.yml"
)

// GetDefaults returns the built-in configuration
func GetDefaults() types.GlobalConfig {
	return types.GlobalConfig{
		Color:    "auto",
		LogLevel: "warn",
		Presets:  map[string]types.Preset{},
	}
}

// GlobalPath returns the default location of the global config file
func GlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appName, globalFileName), nil
}

// LoadGlobal loads the global config from its default location.
// A missing file yields the defaults.
func LoadGlobal() (*types.GlobalConfig, error) {
	path, err := GlobalPath()
	if err != nil {
		defaults := GetDefaults()
		return &defaults, nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		defaults := GetDefaults()
		return &defaults, nil
	}
	return cfg, err
}

// Load reads a config file, filling unset fields from the defaults.
func Load(path string) (*types.GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.Path = path
	return &cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *types.GlobalConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
