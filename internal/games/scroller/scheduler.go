package scroller

import (
	"context"
	"time"
)

// InputSource supplies the intent for the next frame. It is read once per
// frame and never written by the simulation.
type InputSource interface {
	Intent() Intent
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Intent

// Intent returns f().
func (f InputFunc) Intent() Intent {
	return f()
}

// RenderFunc is called after every simulated frame.
type RenderFunc func(g *Game)

// Scheduler drives one simulation step and one render step per frame.
// It is not safe for concurrent use; each session owns its own.
type Scheduler struct {
	game   *Game
	input  InputSource
	render RenderFunc
	active bool
	paused bool
	frames uint64
}

// NewScheduler creates a scheduler for g. render may be nil.
func NewScheduler(g *Game, input InputSource, render RenderFunc) *Scheduler {
	if input == nil {
		input = InputFunc(func() Intent { return Intent{} })
	}
	return &Scheduler{game: g, input: input, render: render}
}

// Game returns the scheduled game.
func (s *Scheduler) Game() *Game {
	return s.game
}

// Active reports whether frames are being scheduled.
func (s *Scheduler) Active() bool {
	return s.active
}

// Paused reports whether the loop was stopped by Pause.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Frames returns the number of frames simulated by this scheduler.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Start activates the loop. It returns false if the loop is already active
// or the game is not running, so callers never start a second loop.
func (s *Scheduler) Start() bool {
	if s.active || s.paused || !s.game.IsRunning() {
		return false
	}
	s.active = true
	return true
}

// Stop deactivates the loop without touching the game.
func (s *Scheduler) Stop() {
	s.active = false
}

// Pause stops the loop until Resume. The game itself is unaware of it.
func (s *Scheduler) Pause() {
	if !s.game.IsRunning() {
		return
	}
	s.paused = true
	s.active = false
}

// Resume restarts a paused loop. Returns true if the loop became active.
func (s *Scheduler) Resume() bool {
	if !s.paused {
		return false
	}
	s.paused = false
	return s.Start()
}

// TogglePause pauses a running loop or resumes a paused one. Returns true
// if the loop became active.
func (s *Scheduler) TogglePause() bool {
	if s.paused {
		return s.Resume()
	}
	s.Pause()
	return false
}

// Frame runs one simulation step and one render step if the loop is
// active. The loop stops once the game leaves the running phase.
// Returns whether another frame should be scheduled.
func (s *Scheduler) Frame() bool {
	if !s.active {
		return false
	}

	s.game.Update(s.input.Intent())
	s.frames++
	if s.render != nil {
		s.render(s.game)
	}

	if !s.game.IsRunning() {
		s.active = false
	}
	return s.active
}

// ContinueToNextLevel advances the game and restarts the loop.
func (s *Scheduler) ContinueToNextLevel() error {
	if err := s.game.ContinueToNextLevel(); err != nil {
		return err
	}
	s.Start()
	return nil
}

// Restart resets the game after game over and restarts the loop.
func (s *Scheduler) Restart() error {
	if err := s.game.Restart(); err != nil {
		return err
	}
	s.paused = false
	s.Start()
	return nil
}

// Run drives frames until the loop stops or ctx is cancelled. A zero
// interval runs frames back to back. It returns ctx.Err() on
// cancellation and nil when the game left the running phase.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	s.Start()
	if !s.active {
		return nil
	}

	if interval <= 0 {
		for {
			select {
			case <-ctx.Done():
				s.active = false
				return ctx.Err()
			default:
			}
			if !s.Frame() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.active = false
			return ctx.Err()
		case <-ticker.C:
			if !s.Frame() {
				return nil
			}
		}
	}
}
