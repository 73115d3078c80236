// Package config provides YAML-based game configuration loading and
// per-level difficulty management for the scroller.
package config

import (
	"errors"
	"fmt"
)

// ScrollerConfig contains all tunables of the side-scroller simulation.
type ScrollerConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Scroll     Scroll           `yaml:"scroll"`
	Spawn      Spawn            `yaml:"spawn"`
	World      World            `yaml:"world"`
	Combat     Combat           `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     Render           `yaml:"render"`
}

// Physics defines world physics parameters.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`           // Added to velY every frame
	LandingTolerance float64 `yaml:"landing_tolerance"` // Extra depth below a platform top that still counts as landing
}

// Player defines the player character.
type Player struct {
	StartX             float64 `yaml:"start_x"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	JumpPower          float64 `yaml:"jump_power"`
	AttackDuration     int     `yaml:"attack_duration"`     // Frames between shots
	InvulnerableFrames int     `yaml:"invulnerable_frames"` // Frames of immunity after a hit
	Lives              int     `yaml:"lives"`
}

// Scroll defines the camera model.
type Scroll struct {
	Speed       float64 `yaml:"speed"`        // World units shifted per scrolling frame
	DeadZone    float64 `yaml:"dead_zone"`    // Fraction of viewport width past which moving right scrolls
	LevelLength float64 `yaml:"level_length"` // Scroll distance that completes a level
}

// Spawn defines monster and power-up spawn rates.
type Spawn struct {
	MonsterFrequency float64 `yaml:"monster_frequency"`  // Per-frame spawn parameter
	MonsterConfirm   float64 `yaml:"monster_confirm"`    // Inner confirmation factor applied to the frequency
	PowerUpRate      float64 `yaml:"power_up_rate"`      // Larger = rarer; <= 0 disables power-ups
	SpeedBoost       float64 `yaml:"speed_boost"`        // Speed added by a speed power-up
	SpeedBoostFrames int     `yaml:"speed_boost_frames"` // Duration of a speed boost
}

// World defines level generation and the logical viewport.
type World struct {
	Density        float64 `yaml:"density"`         // Platform density multiplier at level 1
	BasePlatforms  int     `yaml:"base_platforms"`  // Elevated platforms at density 1.0
	GroundHeight   float64 `yaml:"ground_height"`   // Distance from viewport bottom to the ground line
	ViewportWidth  float64 `yaml:"viewport_width"`  // Headless viewport width in world units
	ViewportHeight float64 `yaml:"viewport_height"` // Headless viewport height in world units
}

// Combat defines projectile and death effect parameters.
type Combat struct {
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	DeathEffectFrames int     `yaml:"death_effect_frames"`
	DeathParticles    int     `yaml:"death_particles"`
}

// Render maps world units onto terminal cells.
type Render struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
}

// DifficultyConfig defines per-level difficulty progression.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases with each completed level.
type ProgressionConfig struct {
	ScrollSpeedStep    float64 `yaml:"scroll_speed_step"`
	SpawnFrequencyStep float64 `yaml:"spawn_frequency_step"`
	SpawnFrequencyCap  float64 `yaml:"spawn_frequency_cap"`
	DensityStep        float64 `yaml:"density_step"`
	DensityCap         float64 `yaml:"density_cap"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI string into a preset. An empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// MaxLives is the upper bound for the life counter.
const MaxLives = 5

// Validate reports the first parameter that would make the simulation
// meaningless.
func (c ScrollerConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.LandingTolerance < 0:
		return fmt.Errorf("config: physics.landing_tolerance must not be negative")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	case c.Player.Lives < 1 || c.Player.Lives > MaxLives:
		return fmt.Errorf("config: player.lives must be in [1, %d], got %d", MaxLives, c.Player.Lives)
	case c.Player.AttackDuration < 0 || c.Player.InvulnerableFrames < 0:
		return fmt.Errorf("config: player frame counters must not be negative")
	case c.Scroll.Speed <= 0:
		return fmt.Errorf("config: scroll.speed must be positive, got %v", c.Scroll.Speed)
	case c.Scroll.DeadZone <= 0 || c.Scroll.DeadZone >= 1:
		return fmt.Errorf("config: scroll.dead_zone must be in (0, 1), got %v", c.Scroll.DeadZone)
	case c.Scroll.LevelLength <= 0:
		return fmt.Errorf("config: scroll.level_length must be positive, got %v", c.Scroll.LevelLength)
	case c.Spawn.MonsterFrequency < 0 || c.Spawn.MonsterFrequency > 1:
		return fmt.Errorf("config: spawn.monster_frequency must be in [0, 1], got %v", c.Spawn.MonsterFrequency)
	case c.World.Density < 0 || c.World.BasePlatforms < 0:
		return fmt.Errorf("config: world density and base_platforms must not be negative")
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("config: render cell size must be positive")
	}
	return nil
}
