// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// LeapConfig contains all configuration for the Leap game.
type LeapConfig struct {
	Road       LeapRoad           `yaml:"road"`
	Clips      map[string]float64 `yaml:"clips"` // animation clip name -> seconds
	Flow       LeapFlow           `yaml:"flow"`
	Input      LeapInput          `yaml:"input"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// LeapRoad defines the level layout parameters.
type LeapRoad struct {
	Length       int     `yaml:"length"`
	SprintLength int     `yaml:"sprint_length"` // length used by the sprint variant
	UnitSize     float64 `yaml:"unit_size"`     // distance between segments in world units
	CellWidth    int     `yaml:"cell_width"`    // terminal columns drawn per unit
}

// LeapFlow defines phase timing.
type LeapFlow struct {
	InputDelay float64 `yaml:"input_delay"` // seconds before input is armed after start
}

// LeapInput selects the input device class: "auto", "keyboard" or "touch".
type LeapInput struct {
	Mode string `yaml:"mode"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "steps", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Steps/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to jump speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by Validate errors.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first value that would make the game unplayable.
func (c LeapConfig) Validate() error {
	switch {
	case c.Road.Length < 1:
		return fmt.Errorf("config: road.length %d: %w", c.Road.Length, ErrInvalidConfig)
	case c.Road.SprintLength < 1:
		return fmt.Errorf("config: road.sprint_length %d: %w", c.Road.SprintLength, ErrInvalidConfig)
	case c.Road.UnitSize <= 0:
		return fmt.Errorf("config: road.unit_size %g: %w", c.Road.UnitSize, ErrInvalidConfig)
	case c.Road.CellWidth < 1:
		return fmt.Errorf("config: road.cell_width %d: %w", c.Road.CellWidth, ErrInvalidConfig)
	case c.Flow.InputDelay < 0:
		return fmt.Errorf("config: flow.input_delay %g: %w", c.Flow.InputDelay, ErrInvalidConfig)
	}
	switch c.Input.Mode {
	case "", "auto", "keyboard", "touch":
	default:
		return fmt.Errorf("config: input.mode %q: %w", c.Input.Mode, ErrInvalidConfig)
	}
	return nil
}
