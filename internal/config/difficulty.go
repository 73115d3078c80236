package config

import "math"

// DifficultyManager calculates per-level game parameters.
// Level 1 always uses the base values; each completed level adds one step,
// bounded by the configured caps.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// steps returns how many completed levels contribute to progression.
func (d *DifficultyManager) steps(level int) float64 {
	if !d.cfg.Enabled || level <= 1 {
		return 0
	}
	return float64(level - 1)
}

// ScrollSpeed returns the scroll speed for the given level. Uncapped.
func (d *DifficultyManager) ScrollSpeed(base float64, level int) float64 {
	return base + d.steps(level)*d.cfg.Progression.ScrollSpeedStep
}

// SpawnFrequency returns the monster spawn frequency for the given level.
func (d *DifficultyManager) SpawnFrequency(base float64, level int) float64 {
	f := base + d.steps(level)*d.cfg.Progression.SpawnFrequencyStep
	return capAt(f, d.cfg.Progression.SpawnFrequencyCap)
}

// Density returns the platform density for the given level.
func (d *DifficultyManager) Density(base float64, level int) float64 {
	f := base + d.steps(level)*d.cfg.Progression.DensityStep
	return capAt(f, d.cfg.Progression.DensityCap)
}

// capAt bounds val by limit; a non-positive limit means no cap.
func capAt(val, limit float64) float64 {
	if limit <= 0 {
		return val
	}
	return math.Min(val, limit)
}
