package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// Axis names the velocity component a block hit inverts.
type Axis int

const (
	AxisVertical   Axis = iota // invert VY
	AxisHorizontal             // invert VX
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// RectsOverlap reports whether two bounding boxes intersect (closed intervals).
func RectsOverlap(a, b core.Box) bool {
	return a.Overlaps(b)
}

// PaddleFaceAligned reports whether the ball's lower edge lies within the
// paddle's vertical span. Only the lower edge is checked, so a ball clipping
// the paddle's side below its face does not bounce.
func PaddleFaceAligned(ball Ball, paddle core.Box) bool {
	bottom := ball.Bottom()
	return bottom >= paddle.Y && bottom <= paddle.Bottom()
}

// BlockHitAxis classifies an overlap between the ball and a block.
// The hit is vertical when the ball's lower edge lies within the block's
// vertical span, the same face test the paddle uses; anything else is horizontal.
func BlockHitAxis(ball Ball, block core.Box) Axis {
	bottom := ball.Bottom()
	if bottom >= block.Y && bottom <= block.Bottom() {
		return AxisVertical
	}
	return AxisHorizontal
}

// hitsLeftOrRightWall reports whether the ball touches a side wall.
// The right bound is the window width minus the radius, not the diameter.
func hitsLeftOrRightWall(ball Ball) bool {
	return ball.Pos.X <= 0 || ball.Pos.X >= WorldWidth-BallRadius
}

func hitsTopWall(ball Ball) bool {
	return ball.Pos.Y <= 0
}

func fellOff(ball Ball) bool {
	return ball.Pos.Y >= WorldHeight
}
