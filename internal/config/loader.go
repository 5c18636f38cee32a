package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRingEscape loads Ring Escape configuration.
// Search order: customPath -> ~/.ringtrap/configs/ringescape.yaml ->
// ./configs/ringescape.yaml -> embedded default.
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadRingEscape(customPath string) (RingEscapeConfig, error) {
	cfg := DefaultRingEscapeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("ringescape.yaml"),
		filepath.Join("configs", "ringescape.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultRingEscapeConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultRingEscapeConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("ringescape"), &embedded); err != nil || embedded.Validate() != nil {
		return DefaultRingEscapeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringtrap", "configs", filename)
}

// ApplyRingEscapePreset modifies the config based on a difficulty preset.
// Wider erosion opens the outer wall sooner; a faster ball crosses the
// board in fewer ticks but is harder to follow. Fixed keeps the file values.
func ApplyRingEscapePreset(cfg *RingEscapeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Segments.ErosionHalfWidth = 6
		cfg.Ball.BaseSpeed = 1.5
	case DifficultyNormal:
		cfg.Segments.ErosionHalfWidth = 4
		cfg.Ball.BaseSpeed = 2.0
	case DifficultyHard:
		cfg.Segments.ErosionHalfWidth = 2
		cfg.Ball.BaseSpeed = 3.0
	}
}
