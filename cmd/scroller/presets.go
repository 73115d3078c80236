package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-scroller/internal/config"
)

var flagConfigDefaults bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the starting values of every difficulty preset and how they progress.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use as YAML, after the search
order and --difficulty have been applied. Redirect it to a file to start a
custom config:

  scroller config --defaults > ~/.scroller/configs/scroller.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file instead")
}

func loadConfig() (config.ScrollerConfig, error) {
	cfg, err := config.LoadScroller(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset())
	}
	return cfg, nil
}

func runPresets(_ *cobra.Command, _ []string) {
	base, err := config.LoadScroller(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-7s  %-6s  %-9s  %-8s  %-7s  %s\n", "Preset", "Speed", "Monsters", "Power-up", "Density", "Progression")
	fmt.Printf("  %-7s  %-6s  %-9s  %-8s  %-7s  %s\n", "------", "-----", "--------", "--------", "-------", "-----------")

	for _, p := range config.Presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		progression := "per level"
		if !config.NewDifficultyManager(cfg.Difficulty).IsEnabled() {
			progression = "none"
		}
		fmt.Printf("  %-7s  %-6.1f  %-9.3f  1/%-6.0f  %-7.1f  %s\n",
			p, cfg.Scroll.Speed, cfg.Spawn.MonsterFrequency, cfg.Spawn.PowerUpRate, cfg.World.Density, progression)
	}

	fmt.Println()
	fmt.Println("Run 'scroller play --difficulty <preset>' to play one.")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(out)
}
