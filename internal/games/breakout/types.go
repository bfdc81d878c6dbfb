// Package breakout implements the block-breaker simulation: a paddle deflects
// a ball to destroy a 10x2 grid of blocks, in an easy or a hard mode.
//
// The simulation runs in world units of an 800x600 window. World is a plain
// value and Advance is a pure transition, so a frame can be replayed and tested
// without any platform. Game wraps a World for the arcade platform.
package breakout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// World dimensions and entity sizes.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0

	PaddleWidth  = 100.0
	PaddleHeight = 20.0
	PaddleStartX = 350.0
	PaddleStartY = 550.0

	BallRadius = 10.0
	BallStartX = 395.0
	BallStartY = 300.0

	BlockWidth   = 80.0
	BlockHeight  = 30.0
	BlockGutter  = 5.0
	BlockColumns = 10
	BlockRows    = 2
	BlockOffsetX = 35.0
	BlockOffsetY = 50.0
	BlockCount   = BlockColumns * BlockRows

	PointsPerBlock = 10
	MaxScore       = BlockCount * PointsPerBlock
)

// GameState is the phase of the simulation.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateGameClear
)

// String returns the phase name used in logs and the platform summary.
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateGameClear:
		return "gameclear"
	default:
		return "unknown"
	}
}

// AcceptsSelection reports whether difficulty selection is accepted in this state.
func (s GameState) AcceptsSelection() bool {
	return s == StateMenu || s == StateGameOver || s == StateGameClear
}

// Difficulty selects the velocity model for a run.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognised names.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts "easy"/"hard" (or "1"/"2", as on the menu) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "hard", "2":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Paddle is the player's bat. Only X changes during a run.
type Paddle struct {
	X, Y float64
}

// Bounds returns the paddle's bounding box.
func (p Paddle) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, PaddleWidth, PaddleHeight)
}

// Ball is positioned by the top-left corner of its bounding box.
type Ball struct {
	Pos core.Vec
	Vel core.Vec
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, 2*BallRadius, 2*BallRadius)
}

// Bottom returns the y-coordinate of the ball's lower edge.
func (b Ball) Bottom() float64 {
	return b.Pos.Y + 2*BallRadius
}

// Block is a destructible target. A block exists while it is in the World's set.
type Block struct {
	X, Y float64
}

// Bounds returns the block's bounding box.
func (b Block) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, BlockWidth, BlockHeight)
}

// Params holds the per-frame step constants. Steps are applied once per frame
// and are not scaled by elapsed time.
type Params struct {
	BallSpeed   float64       // Base speed of each velocity component
	MaxSpeed    float64       // Upper bound for hard-mode chaos speed
	PaddleStep  float64       // Paddle displacement per frame while a key is held
	ClampPaddle bool          // Keep the paddle inside the window
	ClearDelay  time.Duration // How long the clear banner shows before the summary
}

// DefaultParams returns the stock tuning for a 60 Hz frame loop.
func DefaultParams() Params {
	return Params{
		BallSpeed:   0.6,
		MaxSpeed:    1.8,
		PaddleStep:  1.2,
		ClampPaddle: false,
		ClearDelay:  2 * time.Second,
	}
}

// FrameInput is everything the simulation reads from the outside for one frame.
type FrameInput struct {
	Left, Right bool          // Held direction keys
	Select      *Difficulty   // Difficulty chosen this frame, if any
	Elapsed     time.Duration // Wall-clock time covered by this frame
}

// Select returns a pointer to d, for building FrameInput literals.
func Select(d Difficulty) *Difficulty {
	return &d
}
