package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScroller loads the scroller configuration.
// Search order: customPath -> ~/.scroller/configs/scroller.yaml -> ./configs/scroller.yaml -> embedded default
func LoadScroller(customPath string) (ScrollerConfig, error) {
	// Start from defaults so partial files only override what they mention
	cfg := DefaultScrollerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("scroller.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "scroller.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultScrollerYAML, &cfg); err != nil {
		return DefaultScrollerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (ScrollerConfig, bool) {
	cfg := DefaultScrollerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scroller", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ScrollerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust starting values based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scroll.Speed = 4
		cfg.Spawn.MonsterFrequency = 0.005
		cfg.Spawn.PowerUpRate = 250
		cfg.Player.InvulnerableFrames = 90
	case DifficultyHard:
		cfg.Scroll.Speed = 6
		cfg.Spawn.MonsterFrequency = 0.012
		cfg.Spawn.PowerUpRate = 500
		cfg.World.Density = 0.6
	}
}
