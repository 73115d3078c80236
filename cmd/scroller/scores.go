package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/platform/tui"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

const gameID = "scroller"

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print high scores",
	Long: `Display the top high scores for a difficulty preset.

Without --difficulty the normal board is shown; --all merges every preset.

Examples:
  scroller scores
  scroller scores --difficulty hard
  scroller scores --all --limit 20
  scroller scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long: `Open the score board with one tab per difficulty preset.

Controls:
  Tab/Right  - Next preset
  Shift+Tab  - Previous preset
  Up/Down    - Scroll
  Esc/Q      - Close`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every preset together")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High scores cleared.")
		return
	}

	board := string(preset())
	title := board
	if flagScoresAll {
		board = ""
		title = "all presets"
	}

	scores, err := store.TopScores(gameID, board, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - Side Scroller (%s)\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'scroller play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "Rank", "Score", "Level", "Preset", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-7s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-7s  %s\n", i+1, entry.Score, entry.Level, entry.Preset, dateStr)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	for _, p := range config.Presets {
		s, ok := stats[string(p)]
		if !ok {
			continue
		}
		fmt.Printf("%-7s runs %-4d best %-8d deepest level %d\n", p, s.RunsCount, s.HighScore, s.BestLevel)
	}
}

func runBoard(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)

	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
