// Package window runs the block breaker in an 800x600 Ebitengine window,
// drawing the world in its own units.
package window

import (
	"image/color"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

// Entity and text colours.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPaddle     = color.RGBA{0, 255, 0, 255}
	ColorBall       = color.RGBA{255, 0, 0, 255}
	ColorBlock      = color.RGBA{0, 0, 255, 255}
	ColorText       = color.RGBA{255, 255, 255, 255}
)

// Shape is a filled rectangle or circle in world units.
type Shape struct {
	X, Y, W, H float32
	Circle     bool // Drawn in the box's inscribed circle
	Color      color.RGBA
}

// Label is a line of text whose box's top-left corner is at (X, Y).
type Label struct {
	Text  string
	X, Y  float64
	Large bool
}

// Scene is everything drawn for one frame.
type Scene struct {
	Shapes []Shape
	Labels []Label
}

// BuildScene lays out the frame for w.
func BuildScene(w breakout.World) Scene {
	var s Scene

	switch w.State {
	case breakout.StateMenu:
		s.Labels = append(s.Labels, Label{Text: breakout.MenuPrompt, X: 150, Y: 250, Large: true})

	case breakout.StatePlaying:
		p := w.Paddle
		s.Shapes = append(s.Shapes, Shape{
			X: float32(p.X), Y: float32(p.Y),
			W: breakout.PaddleWidth, H: breakout.PaddleHeight,
			Color: ColorPaddle,
		})
		s.Shapes = append(s.Shapes, Shape{
			X: float32(w.Ball.Pos.X), Y: float32(w.Ball.Pos.Y),
			W: 2 * breakout.BallRadius, H: 2 * breakout.BallRadius,
			Circle: true,
			Color:  ColorBall,
		})
		for _, b := range w.Blocks {
			s.Shapes = append(s.Shapes, Shape{
				X: float32(b.X), Y: float32(b.Y),
				W: breakout.BlockWidth, H: breakout.BlockHeight,
				Color: ColorBlock,
			})
		}
		s.Labels = append(s.Labels,
			Label{Text: breakout.ScoreText(w.Score), X: 10, Y: 10},
			Label{Text: breakout.TimeText(w), X: 10, Y: 40},
		)

	case breakout.StateGameOver:
		s.Labels = append(s.Labels,
			Label{Text: breakout.GameOverTitle, X: 150, Y: 200, Large: true},
			Label{Text: breakout.MenuPrompt, X: 150, Y: 245, Large: true},
			Label{Text: breakout.FinalScoreText(w.Score), X: 300, Y: 300},
			Label{Text: breakout.TimeText(w), X: 300, Y: 350},
			Label{Text: breakout.RateScore(w.Score).Banner(), X: 150, Y: 450},
		)

	case breakout.StateGameClear:
		s.Labels = append(s.Labels,
			Label{Text: breakout.GameClearTitle, X: 250, Y: 250, Large: true},
			Label{Text: breakout.FinalScoreText(w.Score), X: 300, Y: 300},
			Label{Text: breakout.TimeText(w), X: 300, Y: 350},
		)
	}

	return s
}
