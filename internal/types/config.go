package types

import (
	"fmt"
	"sort"
)

// GlobalConfig represents the global configuration file (~/.config/r3name/config.yml)
type GlobalConfig struct {
	DryRun   bool              `yaml:"dry_run"`
	Strict   bool              `yaml:"strict"`
	Color    string            `yaml:"color,omitempty"`     // auto, always, never
	LogLevel string            `yaml:"log_level,omitempty"` // debug, info, warn, error
	Presets  map[string]Preset `yaml:"presets,omitempty"`
	Path     string            `yaml:"-"` // File the config was loaded from, empty for defaults
}

// Preset is a named pattern/replacement pair
type Preset struct {
	Description string `yaml:"description,omitempty"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// Clone returns a deep copy of the global configuration
func (g *GlobalConfig) Clone() GlobalConfig {
	res := *g
	if len(g.Presets) > 0 {
		res.Presets = make(map[string]Preset, len(g.Presets))
		for name, p := range g.Presets {
			res.Presets[name] = p
		}
	}
	return res
}

// ResolvePreset finds the preset with the given name
func (g *GlobalConfig) ResolvePreset(name string) (*Preset, error) {
	p, ok := g.Presets[name]
	if !ok {
		return nil, ErrPresetNotFound{Name: name}
	}
	return &p, nil
}

// PresetNames returns the configured preset names in sorted order
func (g *GlobalConfig) PresetNames() []string {
	names := make([]string, 0, len(g.Presets))
	for name := range g.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks enumerated fields for unsupported values
func (g *GlobalConfig) Validate() error {
	switch g.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", g.Color)
	}
	for name, p := range g.Presets {
		if p.Pattern == "" {
			return fmt.Errorf("preset %q has no pattern", name)
		}
	}
	return nil
}
