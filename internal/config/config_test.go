package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/mydehq/r3name/internal/config"
	"github.com/mydehq/r3name/internal/types"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestGetDefaults(t *testing.T) {
	cfg := config.GetDefaults()

	if cfg.DryRun {
		t.Error("DryRun = true, want false")
	}
	if cfg.Strict {
		t.Error("Strict = true, want false")
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want %q", cfg.Color, "auto")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Presets == nil {
		t.Error("Presets is nil, want empty map")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
dry_run: true
strict: true
color: never
presets:
  jpeg:
    description: Normalise extensions
    pattern: '^(.*)\.jpeg$'
    replacement: '$1.jpg'
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.DryRun || !cfg.Strict {
		t.Errorf("DryRun/Strict = %v/%v, want true/true", cfg.DryRun, cfg.Strict)
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "warn")
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}

	p, err := cfg.ResolvePreset("jpeg")
	if err != nil {
		t.Fatalf("ResolvePreset() error = %v", err)
	}
	if p.Pattern != `^(.*)\.jpeg$` || p.Replacement != "$1.jpg" {
		t.Errorf("preset = %+v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Malformed YAML", "dry_run: [unterminated"},
		{"Bad Color", "color: rainbow"},
		{"Preset Without Pattern", "presets:\n  empty:\n    replacement: x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			if _, err := config.Load(path); err == nil {
				t.Errorf("Load() succeeded for %q; want error", tt.body)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v; want ErrNotExist", err)
	}
}

func TestLoadGlobal(t *testing.T) {
	t.Run("MissingFileYieldsDefaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := config.LoadGlobal()
		if err != nil {
			t.Fatalf("LoadGlobal() error = %v", err)
		}
		if cfg.Path != "" {
			t.Errorf("Path = %q, want empty for defaults", cfg.Path)
		}
		if cfg.Color != "auto" {
			t.Errorf("Color = %q, want %q", cfg.Color, "auto")
		}
	})

	t.Run("ReadsFromConfigHome", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)

		dir := filepath.Join(home, "r3name")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeConfig(t, dir, "log_level: debug\n")

		cfg, err := config.LoadGlobal()
		if err != nil {
			t.Fatalf("LoadGlobal() error = %v", err)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg := config.GetDefaults()
	cfg.Strict = true
	cfg.Presets["md"] = types.Preset{Pattern: `\.markdown$`, Replacement: ".md"}

	if err := config.Save(path, &cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.Strict {
		t.Error("Strict was not persisted")
	}
	if got := loaded.PresetNames(); len(got) != 1 || got[0] != "md" {
		t.Errorf("PresetNames() = %v; want [md]", got)
	}
}
