package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score         int  // Current score
	Level         int  // Current level (1-based)
	GameOver      bool // Whether the run has ended
	LevelComplete bool // Whether the level is waiting for a continue signal
	Paused        bool // Whether the game is paused
}

// Running reports whether the simulation is advancing.
func (s GameState) Running() bool {
	return !s.GameOver && !s.LevelComplete && !s.Paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
