package breakout

import (
	"math"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// RandomSource supplies uniformly distributed samples in [0, 1).
// *math/rand.Rand and *SimpleRNG both satisfy it.
type RandomSource interface {
	Float64() float64
}

// ChaosSpeed draws a hard-mode speed in [baseSpeed, 3*baseSpeed).
// A draw above maxSpeed wraps around with a floating-point remainder,
// so the result can land close to zero.
func ChaosSpeed(baseSpeed, maxSpeed float64, rng RandomSource) float64 {
	speed := baseSpeed * (1 + 2*rng.Float64())
	if speed > maxSpeed {
		speed = math.Mod(speed, maxSpeed)
	}
	return speed
}

// ComputeBounceVelocity returns the ball velocity after a paddle bounce.
//
// Easy mode only sends the ball upward; the horizontal component is untouched.
// Hard mode additionally replaces the magnitude of both components with one
// chaos speed, keeping the horizontal direction. rng is only read in hard mode.
func ComputeBounceVelocity(v core.Vec, d Difficulty, baseSpeed, maxSpeed float64, rng RandomSource) core.Vec {
	v.Y = -math.Abs(v.Y)

	if d != Hard {
		return v
	}

	chaos := ChaosSpeed(baseSpeed, maxSpeed, rng)
	if v.X > 0 {
		v.X = chaos
	} else {
		v.X = -chaos
	}
	v.Y = -chaos
	return v
}
