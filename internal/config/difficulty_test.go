package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevelOneUsesBase(t *testing.T) {
	dm := NewDifficultyManager(DefaultScrollerConfig().Difficulty)

	if got := dm.ScrollSpeed(5, 1); got != 5 {
		t.Errorf("ScrollSpeed(5, 1) = %v, expected 5", got)
	}
	if got := dm.SpawnFrequency(0.007, 1); got != 0.007 {
		t.Errorf("SpawnFrequency(0.007, 1) = %v, expected 0.007", got)
	}
	if got := dm.Density(0.8, 1); got != 0.8 {
		t.Errorf("Density(0.8, 1) = %v, expected 0.8", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	dm := NewDifficultyManager(DefaultScrollerConfig().Difficulty)

	tests := []struct {
		level   int
		speed   float64
		freq    float64
		density float64
	}{
		{2, 5.3, 0.009, 1.0},
		{3, 5.6, 0.011, 1.2},
		{12, 8.3, 0.029, 3.0},
		{13, 8.6, 0.03, 3.0},
		{50, 19.7, 0.03, 3.0},
	}

	for _, tt := range tests {
		if got := dm.ScrollSpeed(5, tt.level); !approx(got, tt.speed) {
			t.Errorf("ScrollSpeed(level %d) = %v, expected %v", tt.level, got, tt.speed)
		}
		if got := dm.SpawnFrequency(0.007, tt.level); !approx(got, tt.freq) {
			t.Errorf("SpawnFrequency(level %d) = %v, expected %v", tt.level, got, tt.freq)
		}
		if got := dm.Density(0.8, tt.level); !approx(got, tt.density) {
			t.Errorf("Density(level %d) = %v, expected %v", tt.level, got, tt.density)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultScrollerConfig().Difficulty
	cfg.Enabled = false
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true for a disabled config")
	}
	if got := dm.ScrollSpeed(5, 9); got != 5 {
		t.Errorf("ScrollSpeed with progression disabled = %v, expected 5", got)
	}
	if got := dm.Density(0.8, 9); got != 0.8 {
		t.Errorf("Density with progression disabled = %v, expected 0.8", got)
	}
}
