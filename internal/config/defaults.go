package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default block breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:    0.6,
			MaxBallSpeed: 1.8,
			PaddleStep:   1.2,
			ClampPaddle:  false,
		},
		Timing: BreakoutTiming{
			ClearBannerSeconds: 2.0,
			FramesPerTick:      8,
		},
		Window: BreakoutWindow{
			FontSize: 24,
			Scale:    1.0,
		},
	}
}
