package breakout

import (
	"time"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// ParamsFromConfig converts the physics and timing sections to simulation parameters.
func ParamsFromConfig(cfg config.BreakoutConfig) Params {
	return Params{
		BallSpeed:   cfg.Physics.BallSpeed,
		MaxSpeed:    cfg.Physics.MaxBallSpeed,
		PaddleStep:  cfg.Physics.PaddleStep,
		ClampPaddle: cfg.Physics.ClampPaddle,
		ClearDelay:  cfg.ClearBanner(),
	}
}

// Game is the stateful wrapper around World used by the platform adapters.
// It satisfies the terminal adapter's game contract.
// Held directions are latched by MoveLeft/MoveRight and consumed by the next frame.
type Game struct {
	world World
	rules Rules
	rng   *SimpleRNG

	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig

	left, right bool

	// Terminal layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// NewWithConfig creates a game bound to cfg. The caller validates cfg.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Breaker"
}

// Reset reseeds the random source and returns to the menu, or straight into
// a run when a start difficulty is configured.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.rng = NewSimpleRNG(runtime.Seed)
	g.rules = NewRules(ParamsFromConfig(g.cfg), g.rng)
	g.left, g.right = false, false

	g.minScreenW = 40
	g.minScreenH = 16
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.world = g.rules.NewWorld()
	if d, ok := g.startDifficulty(); ok {
		g.world = g.rules.Reset(d)
	}
}

// Resize updates the terminal size without touching the simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < g.minScreenW || height < g.minScreenH
}

// startDifficulty reports the configured difficulty that skips the menu.
// Unknown names show the menu.
func (g *Game) startDifficulty() (Difficulty, bool) {
	name := g.cfg.Gameplay.StartDifficulty
	if name == "" {
		return Easy, false
	}
	d, err := ParseDifficulty(name)
	if err != nil {
		return Easy, false
	}
	return d, true
}

// SelectDifficulty starts a new run from the menu or an end screen.
// It has no effect while playing.
func (g *Game) SelectDifficulty(d Difficulty) {
	g.world = g.rules.ApplySelection(g.world, d)
}

// MoveLeft holds the left direction for the next frame.
func (g *Game) MoveLeft() {
	g.left = true
}

// MoveRight holds the right direction for the next frame.
func (g *Game) MoveRight() {
	g.right = true
}

// AdvanceFrame runs one simulation frame covering dt of wall-clock time.
func (g *Game) AdvanceFrame(dt time.Duration) {
	in := FrameInput{Left: g.left, Right: g.right, Elapsed: dt}
	g.left, g.right = false, false
	g.world = g.rules.Advance(g.world, in)
}

// FramesPerTick returns how many simulation frames Step runs.
func (g *Game) FramesPerTick() int {
	return max(g.cfg.Timing.FramesPerTick, 1)
}

// Step advances the simulation by one platform tick that covered elapsed
// wall-clock time; zero or less means the nominal tick interval. The time is
// split across FramesPerTick frames and held directions apply to each of them.
// Movement is per frame, so only the run timer follows elapsed.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Selection is checked in the same order as the menu lists it
	if in.Has(core.ActionSelectEasy) {
		g.SelectDifficulty(Easy)
	} else if in.Has(core.ActionSelectHard) {
		g.SelectDifficulty(Hard)
	}

	if elapsed <= 0 {
		elapsed = g.runtime.TickInterval()
	}
	frames := g.FramesPerTick()
	dt := elapsed / time.Duration(frames)
	rem := elapsed - dt*time.Duration(frames)

	for i := range frames {
		if in.Has(core.ActionLeft) {
			g.MoveLeft()
		}
		if in.Has(core.ActionRight) {
			g.MoveRight()
		}
		if i == 0 {
			g.AdvanceFrame(dt + rem)
		} else {
			g.AdvanceFrame(dt)
		}
	}

	return core.StepResult{State: g.State()}
}

// World returns the current world value.
func (g *Game) World() World {
	return g.world
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	if g.rng != nil {
		snap.RNGState = g.rng.State()
	}
	return snap
}

// Rating returns the rating for the current score.
func (g *Game) Rating() Rating {
	return RateScore(g.world.Score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.world.Score,
		Phase:   g.world.State.String(),
		Over:    g.world.State == StateGameOver,
		Elapsed: g.world.RunTime,
		Grade:   g.Rating().String(),
	}
}
