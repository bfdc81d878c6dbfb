package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
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

// TickInterval returns the wall-clock duration of one platform tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the platform-facing summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score   int           // Current score
	Phase   string        // Game-specific phase name (e.g. "menu", "playing")
	Over    bool          // Whether the current run has ended
	Elapsed time.Duration // Run time, frozen once the run ends
	Grade   string        // Game-specific grade of the score, empty if the game has none
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
}
