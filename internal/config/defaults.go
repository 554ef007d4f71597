package config

import (
	_ "embed"
)

//go:embed defaults/leap.yaml
var defaultLeapYAML []byte

// DefaultLeapConfig returns the default Leap configuration.
func DefaultLeapConfig() LeapConfig {
	return LeapConfig{
		Road: LeapRoad{
			Length:       50,
			SprintLength: 15,
			UnitSize:     40,
			CellWidth:    3,
		},
		Clips: map[string]float64{
			"oneStep": 0.1,
			"twoStep": 0.2,
		},
		Flow: LeapFlow{
			InputDelay: 0.1,
		},
		Input: LeapInput{
			Mode: "auto",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "steps",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "leap", "leap_sprint":
		return defaultLeapYAML
	default:
		return nil
	}
}
