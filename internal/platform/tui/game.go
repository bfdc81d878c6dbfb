package tui

import (
	"time"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Game is what the terminal adapter needs from a game.
// Games contain pure logic with no Bubble Tea dependency; the adapter handles
// input mapping, timing and rendering.
type Game interface {
	// ID returns a short identifier (e.g., "breakout"), used in logs and
	// screenshot file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick that covered elapsed
	// wall-clock time. Zero means the nominal tick interval.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the platform summary (score, phase, run time, grade).
	State() core.GameState
}
