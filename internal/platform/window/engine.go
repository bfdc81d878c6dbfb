package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/fonts"
)

const (
	Width  = int(breakout.WorldWidth)
	Height = int(breakout.WorldHeight)
)

// Input is the keyboard state sampled for one Update.
type Input struct {
	Left, Right bool // Held
	Easy, Hard  bool // Pressed this frame
	Quit        bool
}

// PollInput reads the keyboard.
func PollInput() Input {
	return Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Easy:  inpututil.IsKeyJustPressed(ebiten.KeyDigit1) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad1),
		Hard:  inpututil.IsKeyJustPressed(ebiten.KeyDigit2) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad2),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Engine implements ebiten.Game around a breakout.Game.
// Each Update is one simulation frame.
type Engine struct {
	game   *breakout.Game
	faces  fonts.Faces
	logger *log.Logger
	poll   func() Input

	frame time.Duration
	runID string
	prev  breakout.GameState
}

// NewEngine creates an engine. A nil logger discards logs.
func NewEngine(game *breakout.Game, faces fonts.Faces, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		game:   game,
		faces:  faces,
		logger: logger,
		poll:   PollInput,
		frame:  time.Second / time.Duration(ebiten.DefaultTPS),
		prev:   game.World().State,
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func (e *Engine) Run(scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(Width)*scale), int(float64(Height)*scale))
	ebiten.SetWindowTitle(e.game.Title())
	ebiten.SetTPS(ebiten.DefaultTPS)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update polls the keyboard and runs one frame.
func (e *Engine) Update() error {
	return e.apply(e.poll())
}

func (e *Engine) apply(in Input) error {
	if in.Quit {
		e.logger.Info("quit", "phase", e.game.World().State, "score", e.game.World().Score)
		return ebiten.Termination
	}

	if in.Easy {
		e.game.SelectDifficulty(breakout.Easy)
	} else if in.Hard {
		e.game.SelectDifficulty(breakout.Hard)
	}
	if in.Left {
		e.game.MoveLeft()
	}
	if in.Right {
		e.game.MoveRight()
	}
	e.game.AdvanceFrame(e.frame)

	e.logTransition(e.game.World())
	return nil
}

// logTransition logs run start and run end.
func (e *Engine) logTransition(w breakout.World) {
	prev := e.prev
	e.prev = w.State

	switch {
	case w.State == breakout.StatePlaying && prev != breakout.StatePlaying:
		e.runID = uuid.NewString()
		e.logger.Info("run started", "run", e.runID, "difficulty", w.Difficulty)
	case prev == breakout.StatePlaying && w.State != breakout.StatePlaying:
		e.logger.Info("run ended",
			"run", e.runID,
			"state", w.State,
			"score", w.Score,
			"time", w.RunTime.Round(10*time.Millisecond),
			"rating", breakout.RateScore(w.Score),
		)
	}
}

// Draw renders the current scene.
func (e *Engine) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	scene := BuildScene(e.game.World())
	for _, s := range scene.Shapes {
		if s.Circle {
			r := s.W / 2
			vector.DrawFilledCircle(screen, s.X+r, s.Y+r, r, s.Color, true)
			continue
		}
		vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, s.Color, false)
	}

	for _, l := range scene.Labels {
		face := e.faces.Normal
		if l.Large {
			face = e.faces.Large
		}
		// Labels are positioned by their top edge; text.Draw takes the baseline
		ascent := face.Metrics().Ascent.Ceil()
		text.Draw(screen, l.Text, face, int(l.X), int(l.Y)+ascent, ColorText)
	}
}

// Layout keeps the logical screen at the world size and lets Ebitengine scale it.
func (e *Engine) Layout(_, _ int) (int, int) {
	return Width, Height
}
