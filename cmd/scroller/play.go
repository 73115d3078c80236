package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the scroller",
	Long: `Start a run at the chosen difficulty.

Controls:
  Left/A, Right/D  - Run (moving right past a third of the screen scrolls)
  Down/S           - Stop running
  Space/Up/W       - Jump
  X/E              - Shoot
  Space/Enter      - Next level (after a level is complete)
  R                - Restart (after game over)
  P                - Pause
  Esc/B            - Leave the run
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower scroll, fewer monsters, longer invulnerability
  normal - The config file's values with per-level progression
  hard   - Faster scroll, more monsters, sparser ledges
  fixed  - No progression, every level plays like the first

Examples:
  scroller play
  scroller play --difficulty easy
  scroller play --seed 42
  scroller play --config ./my-scroller.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore()

	// The preset comes from --difficulty via the package default
	_, runErr := tui.Run(store, runtimeConfig(), "", logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
