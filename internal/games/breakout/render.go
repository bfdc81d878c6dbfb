package breakout

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
)

// Screen text shared by both adapters.
const (
	MenuPrompt     = "Press 1 for Easy, 2 for Hard"
	GameOverTitle  = "Game Over"
	GameClearTitle = "Game Clear!"
)

// ScoreText returns the HUD score label.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// FinalScoreText returns the end screen score label.
func FinalScoreText(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// TimeText formats a run time with two decimals.
func TimeText(w World) string {
	return fmt.Sprintf("Time: %.2f", w.RunTime.Seconds())
}

// projection maps world units onto terminal cells. Row 0 is the HUD;
// the playfield fills the remaining rows.
type projection struct {
	cols, rows int
}

func newProjection(dst *core.Screen) projection {
	return projection{cols: dst.Width(), rows: dst.Height() - 1}
}

func (p projection) col(x float64) int {
	return int(x * float64(p.cols) / WorldWidth)
}

func (p projection) row(y float64) int {
	return 1 + int(y*float64(p.rows)/WorldHeight)
}

// rect converts a world box to a cell rectangle at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	x0, y0 := p.col(b.X), p.row(b.Y)
	x1, y1 := p.col(b.Right()), p.row(b.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	RenderWorld(g.world, dst)
}

// RenderWorld draws w onto dst: HUD, blocks, paddle, ball and the overlay for
// the current state.
func RenderWorld(w World, dst *core.Screen) {
	p := newProjection(dst)

	if w.State == StateMenu {
		drawCenteredBox(dst, "BLOCK BREAKER", MenuPrompt)
		return
	}

	renderHUD(w, dst)

	for _, b := range w.Blocks {
		dst.DrawRect(p.rect(b.Bounds()), BlockChar, core.ColorBlue)
	}

	paddle := p.rect(w.Paddle.Bounds())
	paddle.H = 1
	dst.DrawRect(paddle, PaddleChar, core.ColorGreen)

	// The ball is drawn at its centre cell
	cx := p.col(w.Ball.Pos.X + BallRadius)
	cy := p.row(w.Ball.Pos.Y + BallRadius)
	if cy >= 1 {
		dst.SetColored(cx, cy, BallChar, core.ColorRed)
	}

	renderOverlay(w, dst)
}

// renderHUD draws score, difficulty and run time on row 0.
func renderHUD(w World, dst *core.Screen) {
	dst.DrawText(1, 0, ScoreText(w.Score))
	dst.DrawTextCenteredColored(0, strings.ToUpper(w.Difficulty.String()), core.ColorCyan)

	timeText := TimeText(w)
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)
}

// renderOverlay draws the end screens.
func renderOverlay(w World, dst *core.Screen) {
	switch w.State {
	case StateGameOver:
		drawCenteredBox(dst, GameOverTitle,
			RateScore(w.Score).Banner(),
			FinalScoreText(w.Score),
			TimeText(w),
			MenuPrompt,
		)
	case StateGameClear:
		drawCenteredBox(dst, GameClearTitle,
			FinalScoreText(w.Score),
			TimeText(w),
		)
	}
}

// drawCenteredBox draws a centered message box with a title and a blank line
// between the title and the body.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorYellow)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+3+i, l)
	}
}
