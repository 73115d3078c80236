package config

import (
	_ "embed"
)

//go:embed defaults/scroller.yaml
var defaultScrollerYAML []byte

// DefaultScrollerConfig returns the default scroller configuration.
// It mirrors defaults/scroller.yaml and is used when the embedded file
// cannot be parsed.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		Physics: Physics{
			Gravity:          0.4,
			LandingTolerance: 10,
		},
		Player: Player{
			StartX:             100,
			Width:              40,
			Height:             60,
			Speed:              5,
			JumpPower:          15,
			AttackDuration:     20,
			InvulnerableFrames: 60,
			Lives:              5,
		},
		Scroll: Scroll{
			Speed:       5,
			DeadZone:    1.0 / 3.0,
			LevelLength: 9000,
		},
		Spawn: Spawn{
			MonsterFrequency: 0.007,
			MonsterConfirm:   0.6,
			PowerUpRate:      350,
			SpeedBoost:       0.5,
			SpeedBoostFrames: 600, // 10 seconds at 60fps
		},
		World: World{
			Density:        0.8,
			BasePlatforms:  20,
			GroundHeight:   50,
			ViewportWidth:  800,
			ViewportHeight: 480,
		},
		Combat: Combat{
			ProjectileSpeed:   10,
			DeathEffectFrames: 30,
			DeathParticles:    12,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				ScrollSpeedStep:    0.3,
				SpawnFrequencyStep: 0.002,
				SpawnFrequencyCap:  0.03,
				DensityStep:        0.2,
				DensityCap:         3.0,
			},
		},
		Render: Render{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultScrollerYAML
}
