package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const leapConfigFile = "leap.yaml"

// LoadLeap loads Leap configuration.
// Search order: customPath -> ~/.arcade/configs/leap.yaml -> ./configs/leap.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadLeap(customPath string) (LeapConfig, error) {
	cfg := DefaultLeapConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decodeLeap(data, &cfg); err != nil {
			return DefaultLeapConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(leapConfigFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultLeapConfig()
		if err := decodeLeap(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := decodeLeap(GetDefaultYAML("leap"), &cfg); err != nil {
		return DefaultLeapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolveLeapPath returns the file LoadLeap reads for customPath, or "" when
// the embedded default is used.
func ResolveLeapPath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths(leapConfigFile) {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// decodeLeap overlays data on cfg. A document that lists clips replaces the
// whole clip set, so a clip it leaves out is missing rather than defaulted.
func decodeLeap(data []byte, cfg *LeapConfig) error {
	var clips struct {
		Clips map[string]float64 `yaml:"clips"`
	}
	if err := yaml.Unmarshal(data, &clips); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	if clips.Clips != nil {
		cfg.Clips = clips.Clips
	}
	return cfg.Validate()
}

// searchPaths lists the user and local config locations for a file.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyLeapPreset modifies the config based on a difficulty preset.
func ApplyLeapPreset(cfg *LeapConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Longer roads on harder presets
	switch preset {
	case DifficultyEasy:
		cfg.Road.Length = 30
	case DifficultyHard:
		cfg.Road.Length = 80
	}
}
