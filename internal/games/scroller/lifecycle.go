package scroller

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// ErrInvalidTransition is returned when a lifecycle signal does not apply
// to the current phase. The game is left unchanged.
var ErrInvalidTransition = errors.New("scroller: invalid lifecycle transition")

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.run.Phase
}

// IsRunning reports whether Update advances the simulation.
func (g *Game) IsRunning() bool {
	return g.run.Running
}

// ContinueToNextLevel starts the next level after a completed one.
// Difficulty increases, the layout is regenerated, and monsters and
// power-ups are cleared; projectiles and the player carry over.
func (g *Game) ContinueToNextLevel() error {
	if g.run.Phase != PhaseLevelComplete {
		return fmt.Errorf("%w: continue from %s", ErrInvalidTransition, g.run.Phase)
	}

	g.run.Level++
	g.applyDifficulty()
	g.startLevel()
	g.run.Phase = PhaseRunning
	g.run.Running = true

	g.log.Info("level started",
		"level", g.run.Level,
		"scroll_speed", g.run.ScrollSpeed,
		"spawn_frequency", g.run.MonsterSpawnFrequency,
		"density", g.run.PlatformDensity,
		"platforms", len(g.layout.Platforms))
	return nil
}

// Restart resets the run after game over.
func (g *Game) Restart() error {
	if g.run.Phase != PhaseGameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, g.run.Phase)
	}
	g.resetRun()
	g.log.Info("run restarted")
	return nil
}

// completeLevel freezes the simulation until ContinueToNextLevel.
func (g *Game) completeLevel() {
	g.run.Phase = PhaseLevelComplete
	g.run.Running = false
	g.log.Info("level complete", "level", g.run.Level, "score", g.run.Score, "lives", g.run.Lives)
}

// endRun freezes the simulation until Restart.
func (g *Game) endRun() {
	g.run.Phase = PhaseGameOver
	g.run.Running = false
	g.log.Info("game over", "level", g.run.Level, "score", g.run.Score)
}

// resetRun puts the run, the player and every entity list back to the
// initial state and generates a fresh layout.
func (g *Game) resetRun() {
	g.run = RunState{
		Lives:       core.Clamp(g.cfg.Player.Lives, 1, MaxLives),
		Score:       0,
		Level:       1,
		WeaponPower: 1,
		LevelLength: g.cfg.Scroll.LevelLength,
		Running:     true,
		Phase:       PhaseRunning,
	}
	g.applyDifficulty()
	g.player = g.newPlayer()
	g.projectiles = g.projectiles[:0]
	g.tick = 0
	g.startLevel()
}

// applyDifficulty derives the per-level parameters from the current level.
func (g *Game) applyDifficulty() {
	lvl := g.run.Level
	g.run.ScrollSpeed = g.difficulty.ScrollSpeed(g.cfg.Scroll.Speed, lvl)
	g.run.MonsterSpawnFrequency = g.difficulty.SpawnFrequency(g.cfg.Spawn.MonsterFrequency, lvl)
	g.run.PlatformDensity = g.difficulty.Density(g.cfg.World.Density, lvl)
	g.run.PowerUpSpawnRate = g.cfg.Spawn.PowerUpRate
	g.log.Debug("difficulty", "level", lvl, "progression", g.difficulty.IsEnabled(),
		"speed", g.run.ScrollSpeed, "monster_freq", g.run.MonsterSpawnFrequency, "density", g.run.PlatformDensity)
}

// startLevel regenerates the layout and clears level-bound entities.
// Every platform ref held before this call becomes stale.
func (g *Game) startLevel() {
	g.run.LevelProgress = 0
	g.run.CameraX = 0

	g.generation++
	g.layout = newLayout(g.generation, Generate(g.rng, GenParams{
		CanvasW:     g.view.W,
		GroundY:     g.groundY(),
		LevelLength: g.run.LevelLength,
		Density:     g.run.PlatformDensity,
		BaseCount:   g.cfg.World.BasePlatforms,
	}))

	g.monsters = g.monsters[:0]
	g.powerUps = g.powerUps[:0]
}
