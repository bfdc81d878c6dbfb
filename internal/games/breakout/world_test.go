package breakout

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/blockbreak/internal/core"
)

const frame = time.Second / 60

func easyRules() Rules {
	return NewRules(DefaultParams(), &fixedSource{r: 0.5})
}

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	if w.State != StateMenu {
		t.Errorf("State = %v, expected menu", w.State)
	}
	if len(w.Blocks) != BlockCount {
		t.Fatalf("len(Blocks) = %d, expected %d", len(w.Blocks), BlockCount)
	}

	positions := []struct {
		i    int
		x, y float64
	}{
		{0, 35, 50},
		{1, 120, 50},
		{9, 800, 50},
		{10, 35, 85},
		{19, 800, 85},
	}
	for _, p := range positions {
		b := w.Blocks[p.i]
		if b.X != p.x || b.Y != p.y {
			t.Errorf("block %d at (%v, %v), expected (%v, %v)", p.i, b.X, b.Y, p.x, p.y)
		}
	}

	if w.Paddle != (Paddle{X: 350, Y: 550}) {
		t.Errorf("Paddle = %+v, expected (350, 550)", w.Paddle)
	}
	if w.Ball.Pos != (core.Vec{X: 395, Y: 300}) || w.Ball.Vel != (core.Vec{X: 0.6, Y: -0.6}) {
		t.Errorf("Ball = %+v, expected (395, 300) moving (0.6, -0.6)", w.Ball)
	}
}

func TestMenuIgnoresMovementAndTime(t *testing.T) {
	r := easyRules()
	w := NewWorld()

	next := r.Advance(w, FrameInput{Left: true, Elapsed: frame})
	if !reflect.DeepEqual(next, w) {
		t.Errorf("menu frame changed the world: %+v", next)
	}
}

func TestSelectionStartsRun(t *testing.T) {
	r := easyRules()

	for _, d := range []Difficulty{Easy, Hard} {
		w := r.Advance(NewWorld(), FrameInput{Select: Select(d), Elapsed: frame})
		if w.State != StatePlaying {
			t.Errorf("after selecting %v, State = %v, expected playing", d, w.State)
		}
		if w.Difficulty != d {
			t.Errorf("Difficulty = %v, expected %v", w.Difficulty, d)
		}
		// The selecting frame is also the first playing frame
		if w.RunTime != frame {
			t.Errorf("RunTime = %v, expected %v", w.RunTime, frame)
		}
	}
}

func TestSelectionIgnoredWhilePlaying(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w = r.Advance(w, FrameInput{Elapsed: frame})
	w = r.Advance(w, FrameInput{Select: Select(Hard), Elapsed: frame})

	if w.Difficulty != Easy {
		t.Errorf("Difficulty = %v, expected easy to be kept", w.Difficulty)
	}
	if w.RunTime != 2*frame {
		t.Errorf("RunTime = %v, expected %v (run not restarted)", w.RunTime, 2*frame)
	}
}

func TestResetIsIndependentOfPriorState(t *testing.T) {
	r := easyRules()
	fresh := Reset(Hard)

	// Dirty worlds in every state
	played := Reset(Easy)
	for range 500 {
		played = r.Advance(played, FrameInput{Right: true, Elapsed: frame})
	}
	over := played
	over.State = StateGameOver
	over.Score = 120
	clear := played
	clear.State = StateGameClear
	clear.Blocks = nil
	clear.ClearTime = time.Second

	for _, prior := range []World{NewWorld(), over, clear} {
		got := ApplySelection(prior, Hard)
		if !reflect.DeepEqual(got, fresh) {
			t.Errorf("selecting from %v = %+v, expected %+v", prior.State, got, fresh)
		}
	}
}

func TestResetUsesBallSpeed(t *testing.T) {
	p := DefaultParams()
	p.BallSpeed = 0.9
	r := NewRules(p, &fixedSource{r: 0.5})

	tests := []struct {
		name string
		w    World
	}{
		{"reset", r.Reset(Easy)},
		{"menu", r.NewWorld()},
		{"selection", r.ApplySelection(r.NewWorld(), Hard)},
		{"advance with selection", r.Advance(r.NewWorld(), FrameInput{Select: Select(Easy)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.w.Ball.Vel.X != 0.9 || tt.w.Ball.Vel.Y != -0.9 {
				t.Errorf("Vel = %+v, expected {0.9 -0.9}", tt.w.Ball.Vel)
			}
		})
	}

	if def := Reset(Easy).Ball.Vel; def.X != 0.6 || def.Y != -0.6 {
		t.Errorf("default Vel = %+v, expected {0.6 -0.6}", def)
	}
}

func TestPaddleMovement(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)

	w = r.Advance(w, FrameInput{Left: true, Elapsed: frame})
	if !approxEqual(w.Paddle.X, 350-1.2) {
		t.Errorf("after left, Paddle.X = %v, expected %v", w.Paddle.X, 350-1.2)
	}

	w = r.Advance(w, FrameInput{Right: true, Elapsed: frame})
	w = r.Advance(w, FrameInput{Right: true, Elapsed: frame})
	if !approxEqual(w.Paddle.X, 350+1.2) {
		t.Errorf("after two rights, Paddle.X = %v, expected %v", w.Paddle.X, 350+1.2)
	}

	w = r.Advance(w, FrameInput{Left: true, Right: true, Elapsed: frame})
	if !approxEqual(w.Paddle.X, 350+1.2) {
		t.Errorf("both keys held, Paddle.X = %v, expected no net movement", w.Paddle.X)
	}
	if w.Paddle.Y != PaddleStartY {
		t.Errorf("Paddle.Y = %v, expected it fixed at %v", w.Paddle.Y, PaddleStartY)
	}
}

func TestPaddleUnclampedByDefault(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Ball.Vel = core.Vec{} // keep the ball out of the way

	for range 400 {
		w = r.Advance(w, FrameInput{Left: true, Elapsed: frame})
	}
	if w.Paddle.X >= 0 {
		t.Errorf("Paddle.X = %v, expected it to leave the window", w.Paddle.X)
	}
}

func TestPaddleClampedWhenConfigured(t *testing.T) {
	p := DefaultParams()
	p.ClampPaddle = true
	r := NewRules(p, nil)

	w := Reset(Easy)
	w.Ball.Vel = core.Vec{}
	for range 400 {
		w = r.Advance(w, FrameInput{Left: true, Elapsed: frame})
	}
	if w.Paddle.X != 0 {
		t.Errorf("Paddle.X = %v, expected 0", w.Paddle.X)
	}

	for range 800 {
		w = r.Advance(w, FrameInput{Right: true, Elapsed: frame})
	}
	if w.Paddle.X != WorldWidth-PaddleWidth {
		t.Errorf("Paddle.X = %v, expected %v", w.Paddle.X, WorldWidth-PaddleWidth)
	}
}

func TestWallBounces(t *testing.T) {
	r := easyRules()

	tests := []struct {
		name     string
		pos, vel core.Vec
		expected core.Vec
	}{
		{"left wall", core.Vec{X: 0.5, Y: 300}, core.Vec{X: -0.6, Y: -0.6}, core.Vec{X: 0.6, Y: -0.6}},
		{"right wall", core.Vec{X: 789.5, Y: 300}, core.Vec{X: 0.6, Y: 0.6}, core.Vec{X: -0.6, Y: 0.6}},
		{"top wall", core.Vec{X: 400, Y: 0.5}, core.Vec{X: 0.6, Y: -0.6}, core.Vec{X: 0.6, Y: 0.6}},
		{"corner", core.Vec{X: 0.5, Y: 0.5}, core.Vec{X: -0.6, Y: -0.6}, core.Vec{X: 0.6, Y: 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Reset(Easy)
			w.Blocks = []Block{{X: 400, Y: 400}}
			w.Ball = Ball{Pos: tt.pos, Vel: tt.vel}

			w = r.Advance(w, FrameInput{Elapsed: frame})
			if w.Ball.Vel != tt.expected {
				t.Errorf("Vel = %v, expected %v", w.Ball.Vel, tt.expected)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	// Lower edge reaches the paddle face on the next move
	w.Ball = Ball{Pos: core.Vec{X: 390, Y: 529.5}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})
	if w.Ball.Vel != (core.Vec{X: 0.6, Y: -0.6}) {
		t.Errorf("easy paddle bounce Vel = %v, expected (0.6, -0.6)", w.Ball.Vel)
	}

	hard := Reset(Hard)
	hard.Ball = Ball{Pos: core.Vec{X: 390, Y: 529.5}, Vel: core.Vec{X: -0.6, Y: 0.6}}
	hard = r.Advance(hard, FrameInput{Elapsed: frame})
	if !approxEqual(hard.Ball.Vel.X, -1.2) || !approxEqual(hard.Ball.Vel.Y, -1.2) {
		t.Errorf("hard paddle bounce Vel = %v, expected (-1.2, -1.2)", hard.Ball.Vel)
	}
}

func TestPaddleSideClipDoesNotBounce(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	// Overlapping the paddle's left side with the lower edge below its face
	w.Ball = Ball{Pos: core.Vec{X: 331, Y: 555}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})
	if w.Ball.Vel != (core.Vec{X: 0.6, Y: 0.6}) {
		t.Errorf("Vel = %v, expected no bounce", w.Ball.Vel)
	}
}

func TestBlockHitFromAbove(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Blocks = []Block{{X: 300, Y: 200}, {X: 600, Y: 400}}
	w.Ball = Ball{Pos: core.Vec{X: 340, Y: 181}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})

	if len(w.Blocks) != 1 || w.Blocks[0] != (Block{X: 600, Y: 400}) {
		t.Errorf("Blocks = %v, expected only the untouched block", w.Blocks)
	}
	if w.Ball.Vel != (core.Vec{X: 0.6, Y: -0.6}) {
		t.Errorf("Vel = %v, expected vy flipped", w.Ball.Vel)
	}
	if w.Score != 10 || w.Destroyed != 1 {
		t.Errorf("Score = %d, Destroyed = %d, expected 10 and 1", w.Score, w.Destroyed)
	}
	if w.State != StatePlaying {
		t.Errorf("State = %v, expected playing", w.State)
	}
}

func TestBlockHitFromSide(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Blocks = []Block{{X: 300, Y: 200}, {X: 600, Y: 400}}
	w.Ball = Ball{Pos: core.Vec{X: 279.5, Y: 215}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})

	if len(w.Blocks) != 1 {
		t.Errorf("len(Blocks) = %d, expected 1", len(w.Blocks))
	}
	if w.Ball.Vel != (core.Vec{X: -0.6, Y: 0.6}) {
		t.Errorf("Vel = %v, expected vx flipped", w.Ball.Vel)
	}
}

func TestSimultaneousBlockHitsEachFlip(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	// Two blocks side by side, both hit from above in one frame
	w.Blocks = []Block{{X: 300, Y: 200}, {X: 385, Y: 200}, {X: 600, Y: 400}}
	w.Ball = Ball{Pos: core.Vec{X: 370, Y: 181}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})

	if w.Score != 20 || len(w.Blocks) != 1 {
		t.Errorf("Score = %d, blocks left = %d, expected 20 and 1", w.Score, len(w.Blocks))
	}
	// Two vertical hits cancel out
	if w.Ball.Vel != (core.Vec{X: 0.6, Y: 0.6}) {
		t.Errorf("Vel = %v, expected (0.6, 0.6)", w.Ball.Vel)
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Blocks = []Block{{X: 300, Y: 200}, {X: 600, Y: 400}}
	w.Ball = Ball{Pos: core.Vec{X: 340, Y: 181}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	before := append([]Block(nil), w.Blocks...)
	ball := w.Ball

	next := r.Advance(w, FrameInput{Elapsed: frame})
	if len(next.Blocks) != 1 {
		t.Fatalf("expected a block to be destroyed, got %d left", len(next.Blocks))
	}
	if !reflect.DeepEqual(w.Blocks, before) {
		t.Errorf("input Blocks mutated: %v, expected %v", w.Blocks, before)
	}
	if w.Ball != ball {
		t.Errorf("input Ball mutated: %+v", w.Ball)
	}
}

func TestGameClearWhenBlocksGone(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Blocks = nil
	w.RunTime = 3 * time.Second

	w = r.Advance(w, FrameInput{Elapsed: frame})
	if w.State != StateGameClear {
		t.Fatalf("State = %v, expected gameclear", w.State)
	}
	if w.ClearTime != 0 {
		t.Errorf("ClearTime = %v, expected 0", w.ClearTime)
	}

	frozen := w.RunTime
	w = r.Advance(w, FrameInput{Left: true, Elapsed: frame})
	if w.RunTime != frozen {
		t.Errorf("RunTime = %v, expected frozen at %v", w.RunTime, frozen)
	}
}

func TestGameOverWhenBallFalls(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Ball = Ball{Pos: core.Vec{X: 100, Y: 600}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})
	if w.State != StateGameOver {
		t.Fatalf("State = %v, expected gameover", w.State)
	}

	frozen := w.RunTime
	w = r.Advance(w, FrameInput{Elapsed: time.Second})
	if w.RunTime != frozen {
		t.Errorf("RunTime = %v, expected frozen at %v", w.RunTime, frozen)
	}
}

func TestClearAndFallSameFrameIsGameOver(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.Blocks = nil
	w.Ball = Ball{Pos: core.Vec{X: 100, Y: 600}, Vel: core.Vec{X: 0.6, Y: 0.6}}

	w = r.Advance(w, FrameInput{Elapsed: frame})
	if w.State != StateGameOver {
		t.Errorf("State = %v, expected gameover", w.State)
	}
}

func TestClearBannerTimesOut(t *testing.T) {
	r := easyRules()
	w := Reset(Easy)
	w.State = StateGameClear
	w.Score = MaxScore

	w = r.Advance(w, FrameInput{Elapsed: time.Second})
	w = r.Advance(w, FrameInput{Elapsed: time.Second})
	if w.State != StateGameClear {
		t.Fatalf("at exactly 2s, State = %v, expected gameclear", w.State)
	}

	w = r.Advance(w, FrameInput{Elapsed: time.Millisecond})
	if w.State != StateGameOver {
		t.Errorf("past 2s, State = %v, expected gameover", w.State)
	}
	if w.Score != MaxScore {
		t.Errorf("Score = %d, expected %d kept for the summary", w.Score, MaxScore)
	}
}

func TestSelectionFromEndScreens(t *testing.T) {
	r := easyRules()

	for _, state := range []GameState{StateGameOver, StateGameClear} {
		w := Reset(Easy)
		w.State = state
		w.Score = 50
		w.Blocks = w.Blocks[:3]

		w = r.Advance(w, FrameInput{Select: Select(Hard), Elapsed: frame})
		if w.State != StatePlaying || w.Difficulty != Hard {
			t.Errorf("from %v: State = %v, Difficulty = %v", state, w.State, w.Difficulty)
		}
		if w.Score != 0 || len(w.Blocks) != BlockCount {
			t.Errorf("from %v: Score = %d, blocks = %d, expected a fresh run", state, w.Score, len(w.Blocks))
		}
	}
}

// TestRunInvariants plays long random runs in both modes and checks the
// score and block bookkeeping on every frame.
func TestRunInvariants(t *testing.T) {
	for _, d := range []Difficulty{Easy, Hard} {
		for seed := int64(1); seed <= 5; seed++ {
			rng := NewSimpleRNG(seed)
			input := NewSimpleRNG(seed * 7919)
			r := NewRules(DefaultParams(), rng)

			w := Reset(d)
			prevBlocks := len(w.Blocks)
			for i := range 20000 {
				in := FrameInput{Elapsed: frame}
				// Chase the ball with some noise
				ballCentre := w.Ball.Pos.X + BallRadius
				paddleCentre := w.Paddle.X + PaddleWidth/2
				noise := input.Float64()
				in.Left = ballCentre < paddleCentre && noise < 0.9
				in.Right = ballCentre > paddleCentre && noise < 0.9

				w = r.Advance(w, in)

				if w.Score%PointsPerBlock != 0 || w.Score < 0 || w.Score > MaxScore {
					t.Fatalf("%v seed %d frame %d: Score = %d", d, seed, i, w.Score)
				}
				if len(w.Blocks)+w.Destroyed != BlockCount {
					t.Fatalf("%v seed %d frame %d: %d blocks + %d destroyed != %d",
						d, seed, i, len(w.Blocks), w.Destroyed, BlockCount)
				}
				if len(w.Blocks) > prevBlocks {
					t.Fatalf("%v seed %d frame %d: block count grew", d, seed, i)
				}
				prevBlocks = len(w.Blocks)

				if d == Easy && w.State == StatePlaying {
					speed := math.Hypot(w.Ball.Vel.X, w.Ball.Vel.Y)
					if !approxEqual(speed, 0.6*math.Sqrt2) {
						t.Fatalf("easy seed %d frame %d: |v| = %v", seed, i, speed)
					}
				}
				if d == Hard {
					if math.Abs(w.Ball.Vel.X) > 1.8 || math.Abs(w.Ball.Vel.Y) > 1.8 {
						t.Fatalf("hard seed %d frame %d: Vel = %v", seed, i, w.Ball.Vel)
					}
				}

				if w.State != StatePlaying {
					break
				}
			}
		}
	}
}

func TestAdvanceDefaultTuning(t *testing.T) {
	w := Advance(Reset(Easy), FrameInput{Right: true, Elapsed: frame}, nil)
	if !approxEqual(w.Paddle.X, 351.2) {
		t.Errorf("Paddle.X = %v, expected 351.2", w.Paddle.X)
	}
	if !approxEqual(w.Ball.Pos.X, 395.6) || !approxEqual(w.Ball.Pos.Y, 299.4) {
		t.Errorf("Ball.Pos = %v, expected (395.6, 299.4)", w.Ball.Pos)
	}
}
