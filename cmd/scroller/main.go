// scroller is a side-scrolling platform shooter for the terminal.
//
// Usage:
//
//	scroller play            - Play at the chosen difficulty
//	scroller menu            - Pick a difficulty interactively
//	scroller board           - Browse the high score table
//	scroller scores          - Print the high score table
//	scroller serve           - Start SSH server for remote play
//	scroller sim             - Run the autopilot headless
//	scroller presets         - List difficulty presets
//	scroller config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.scroller/scores.db)
//	--config <path>       - Load a custom scroller.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "Side Scroller - a platform shooter in your terminal",
	Long: `Side Scroller is a terminal platform shooter. Run right, jump between
ledges, shoot monsters and collect power-ups until the level is done.

Available commands:
  play     - Play at the chosen difficulty
  menu     - Interactive difficulty picker
  board    - Browse high scores
  scores   - Print high scores
  serve    - Start SSH server for remote play
  sim      - Run the autopilot without a terminal
  presets  - List difficulty presets
  config   - Print the effective configuration

Examples:
  scroller play
  scroller play --difficulty hard
  scroller menu
  scroller serve --ssh :2222
  scroller sim --levels 3 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		scroller.SetConfigPath(flagConfig)
		scroller.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scroller/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scroller config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: no logging)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger shared by a command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// interactiveLogger logs to --log-file, or nowhere: the terminal belongs
// to the game. The returned close func is always safe to call.
func interactiveLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "scroller"), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard, "scroller"), func() {}
	}
	closeFn := func() {
		//nolint:errcheck // Best-effort close
		f.Close()
	}
	return newLogger(f, "scroller"), closeFn
}

// preset returns the preset chosen with --difficulty, normal if unset.
func preset() config.DifficultyPreset {
	p, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DifficultyNormal
	}
	return p
}
