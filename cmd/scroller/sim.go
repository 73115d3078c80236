package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

var (
	flagSimLevels   int
	flagSimRealtime bool
	flagSimTimeout  time.Duration
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a terminal",
	Long: `Play headless runs with a scripted autopilot that always runs right,
shoots, and jumps over gaps and monsters. Each finished level is logged.

By default frames run back to back; --realtime paces them at --fps.

Examples:
  scroller sim
  scroller sim --levels 5 --seed 7
  scroller sim --difficulty hard --log-level debug
  scroller sim --realtime --timeout 30s --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevels, "levels", 3, "Stop after this many levels")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps instead of running flat out")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 0, "Abort after this long (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the final score in the database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "scroller-sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := scroller.New(scroller.WithLogger(logger))
	// A zero screen size selects the configured headless viewport
	g.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})
	sched := scroller.NewScheduler(g, scroller.NewAutopilot(g), nil)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if flagSimTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagSimTimeout)
		defer cancel()
	}

	var interval time.Duration
	if flagSimRealtime && flagFPS > 0 {
		interval = time.Second / time.Duration(flagFPS)
	}

	logger.Info("simulation started", "seed", seed, "preset", g.Preset(), "levels", flagSimLevels)
	started := time.Now()

	for {
		levelStart := sched.Frames()
		if err := sched.Run(ctx, interval); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Warn("simulation interrupted", "err", err)
				break
			}
			return err
		}

		run := g.Run()
		logger.Info("level finished",
			"level", run.Level,
			"phase", g.Phase(),
			"score", run.Score,
			"lives", run.Lives,
			"weapon", scroller.WeaponName(run.WeaponPower),
			"frames", sched.Frames()-levelStart,
		)

		if g.Phase() == scroller.PhaseGameOver || run.Level >= flagSimLevels {
			break
		}
		if err := sched.ContinueToNextLevel(); err != nil {
			return fmt.Errorf("sim: %w", err)
		}
	}

	run := g.Run()
	fmt.Printf("seed %d  preset %s  level %d  score %d  lives %d  phase %s  frames %d  (%s)\n",
		seed, g.Preset(), run.Level, run.Score, run.Lives, g.Phase(), sched.Frames(),
		time.Since(started).Round(time.Millisecond))

	if flagSimSave && run.Score > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		runID := uuid.NewString()
		if _, err := store.SaveScore(storage.ScoreEntry{
			RunID:  runID,
			GameID: g.ID(),
			Preset: string(g.Preset()),
			Score:  run.Score,
			Level:  run.Level,
		}); err != nil {
			return err
		}
		saved, err := store.ScoreByRun(runID)
		if err != nil {
			return err
		}
		if saved == nil {
			return fmt.Errorf("sim: run %s was not recorded", runID)
		}
		logger.Info("score saved", "run", saved.RunID, "id", saved.ID, "preset", saved.Preset, "at", saved.CreatedAt)
	}

	return nil
}
