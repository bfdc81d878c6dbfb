package breakout

import (
	"time"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// World is the complete simulation state. It is a value: Advance returns a new
// World and never mutates the one it was given (including its Blocks slice).
type World struct {
	State      GameState
	Difficulty Difficulty
	Paddle     Paddle
	Ball       Ball
	Blocks     []Block
	Score      int
	Destroyed  int           // Blocks removed since the last reset
	RunTime    time.Duration // Live while playing, frozen once the run ends
	ClearTime  time.Duration // Time spent on the clear banner
}

// NewWorld returns the world shown at start-up with the default tuning.
func NewWorld() World {
	return Rules{Params: DefaultParams()}.NewWorld()
}

// Reset starts a run in the given difficulty with the default tuning.
func Reset(d Difficulty) World {
	return Rules{Params: DefaultParams()}.Reset(d)
}

// initialBlocks lays out the 10x2 grid with 5px gutters.
func initialBlocks() []Block {
	blocks := make([]Block, 0, BlockCount)
	for i := range BlockCount {
		col := i % BlockColumns
		row := i / BlockColumns
		blocks = append(blocks, Block{
			X: float64(col)*(BlockWidth+BlockGutter) + BlockOffsetX,
			Y: float64(row)*(BlockHeight+BlockGutter) + BlockOffsetY,
		})
	}
	return blocks
}

// ApplySelection applies a difficulty choice with the default tuning.
func ApplySelection(w World, d Difficulty) World {
	return Rules{Params: DefaultParams()}.ApplySelection(w, d)
}

// Rules bundles the tuning and the random source used to advance a World.
type Rules struct {
	Params Params
	RNG    RandomSource
}

// NewRules creates rules with the given parameters and random source.
// A nil source is replaced by a SimpleRNG seeded with 1.
func NewRules(p Params, rng RandomSource) Rules {
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	return Rules{Params: p, RNG: rng}
}

// NewWorld returns the world shown at start-up: the menu, with entities laid out.
func (r Rules) NewWorld() World {
	w := r.Reset(Easy)
	w.State = StateMenu
	return w
}

// Reset creates every entity in its initial position and starts a run in the
// given difficulty. The ball leaves at BallSpeed on both axes, up and to the
// right. The result does not depend on any previous world.
func (r Rules) Reset(d Difficulty) World {
	speed := r.Params.BallSpeed
	return World{
		State:      StatePlaying,
		Difficulty: d,
		Paddle:     Paddle{X: PaddleStartX, Y: PaddleStartY},
		Ball: Ball{
			Pos: core.Vec{X: BallStartX, Y: BallStartY},
			Vel: core.Vec{X: speed, Y: -speed},
		},
		Blocks: initialBlocks(),
	}
}

// ApplySelection starts a new run if the current state accepts a difficulty
// choice (menu or either end screen). While playing the choice is ignored.
func (r Rules) ApplySelection(w World, d Difficulty) World {
	if !w.State.AcceptsSelection() {
		return w
	}
	return r.Reset(d)
}

// Advance runs one frame. A selection in the input is applied first; the
// frame then updates whatever state the world is in.
func (r Rules) Advance(w World, in FrameInput) World {
	if in.Select != nil {
		w = r.ApplySelection(w, *in.Select)
	}

	switch w.State {
	case StatePlaying:
		return r.step(w, in)
	case StateGameClear:
		w.ClearTime += in.Elapsed
		if w.ClearTime > r.Params.ClearDelay {
			w.State = StateGameOver
		}
	}
	return w
}

// step is the playing-state update. The order matters: later checks can
// override velocity changes made by earlier ones.
func (r Rules) step(w World, in FrameInput) World {
	p := r.Params
	w.RunTime += in.Elapsed

	// 1. Paddle
	if in.Left {
		w.Paddle.X -= p.PaddleStep
	}
	if in.Right {
		w.Paddle.X += p.PaddleStep
	}
	if p.ClampPaddle {
		w.Paddle.X = core.ClampF(w.Paddle.X, 0, WorldWidth-PaddleWidth)
	}

	// 2. Ball
	w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel)

	// 3-4. Walls
	if hitsLeftOrRightWall(w.Ball) {
		w.Ball.Vel.X = -w.Ball.Vel.X
	}
	if hitsTopWall(w.Ball) {
		w.Ball.Vel.Y = -w.Ball.Vel.Y
	}

	// 5. Paddle bounce
	paddle := w.Paddle.Bounds()
	if RectsOverlap(w.Ball.Bounds(), paddle) && PaddleFaceAligned(w.Ball, paddle) {
		w.Ball.Vel = ComputeBounceVelocity(w.Ball.Vel, w.Difficulty, p.BallSpeed, p.MaxSpeed, r.RNG)
	}

	// 6. Blocks
	w = resolveBlocks(w)

	// 7-8. End of run. Falling off on the clearing frame still ends in game over.
	if len(w.Blocks) == 0 {
		w.State = StateGameClear
		w.ClearTime = 0
	}
	if fellOff(w.Ball) {
		w.State = StateGameOver
	}
	return w
}

// resolveBlocks removes every block the ball overlaps in one pass. Each hit
// inverts one velocity component, so two hits on the same axis cancel out.
// The world's slice is copied before the first removal.
func resolveBlocks(w World) World {
	ballBox := w.Ball.Bounds()

	var remaining []Block
	hit := false
	for i, b := range w.Blocks {
		box := b.Bounds()
		if !RectsOverlap(ballBox, box) {
			if hit {
				remaining = append(remaining, b)
			}
			continue
		}

		if !hit {
			remaining = make([]Block, i, len(w.Blocks))
			copy(remaining, w.Blocks[:i])
			hit = true
		}

		switch BlockHitAxis(w.Ball, box) {
		case AxisVertical:
			w.Ball.Vel.Y = -w.Ball.Vel.Y
		case AxisHorizontal:
			w.Ball.Vel.X = -w.Ball.Vel.X
		}
		w.Score += PointsPerBlock
		w.Destroyed++
	}

	if hit {
		w.Blocks = remaining
	}
	return w
}

// Advance runs one frame with the default tuning.
func Advance(w World, in FrameInput, rng RandomSource) World {
	return NewRules(DefaultParams(), rng).Advance(w, in)
}
