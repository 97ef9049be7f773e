package cli

import (
	"github.com/mydehq/r3name/internal/config"
	"github.com/mydehq/r3name/internal/types"
	"github.com/mydehq/r3name/internal/ui"
)

func runListPresets(printer *ui.Printer, cfg *types.GlobalConfig) {
	source := cfg.Path
	if source == "" {
		source = "built-in defaults"
	}
	printer.PrintPresets(source, cfg.PresetNames(), cfg.Presets)
}

// savePreset stores pattern/replacement under name and returns the file written.
// The target is the loaded config file, then --config, then the default location.
func savePreset(cfg *types.GlobalConfig, configPath, name, pattern, replacement string) (string, error) {
	path := cfg.Path
	if path == "" {
		path = configPath
	}
	if path == "" {
		var err error
		if path, err = config.GlobalPath(); err != nil {
			return "", err
		}
	}

	updated := cfg.Clone()
	if updated.Presets == nil {
		updated.Presets = map[string]types.Preset{}
	}
	preset := updated.Presets[name]
	preset.Pattern = pattern
	preset.Replacement = replacement
	updated.Presets[name] = preset

	if err := config.Save(path, &updated); err != nil {
		return "", err
	}
	return path, nil
}
