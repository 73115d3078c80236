package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start the scroller in interactive menu mode.

The menu lists the difficulty presets with the best score of each.
Leaving a run (Esc) returns to the menu; Tab opens the score board.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected preset
  Tab          - High scores
  Q            - Quit

Examples:
  scroller menu
  scroller menu --fps 30
  scroller menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore()
	cfg := runtimeConfig()
	current := preset()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		current = menuResult.Preset

		// Fresh seed for each run unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		goBack, runErr := tui.Run(store, runCfg, current, logger)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !goBack {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
