package config

import "math"

// DifficultyManager scales jump timing as a run progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on steps/ticks.
func (d *DifficultyManager) Level(steps int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "steps", "score":
		progress = float64(steps) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedFactor returns the jump speed multiplier, from 1 up to 1+speed_multiplier.
func (d *DifficultyManager) SpeedFactor(steps int, ticks int) float64 {
	return 1.0 + d.Level(steps, ticks)*d.cfg.Scaling.SpeedMultiplier
}

// ClipDuration scales a base animation duration by the current speed factor.
// Faster jumps take less time.
func (d *DifficultyManager) ClipDuration(base float64, steps int, ticks int) float64 {
	factor := d.SpeedFactor(steps, ticks)
	if factor <= 0 {
		return base
	}
	return base / factor
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
