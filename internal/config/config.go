// Package config provides YAML/TOML configuration loading for the block breaker.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig is returned by Validate and the loaders for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the block breaker.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics" toml:"physics"`
	Timing   BreakoutTiming   `yaml:"timing" toml:"timing"`
	Window   BreakoutWindow   `yaml:"window" toml:"window"`
	Gameplay BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
}

// BreakoutPhysics defines the per-frame step constants.
type BreakoutPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed" toml:"max_ball_speed"`
	PaddleStep   float64 `yaml:"paddle_step" toml:"paddle_step"`
	ClampPaddle  bool    `yaml:"clamp_paddle" toml:"clamp_paddle"`
}

// BreakoutTiming defines frame pacing and banner durations.
type BreakoutTiming struct {
	ClearBannerSeconds float64 `yaml:"clear_banner_seconds" toml:"clear_banner_seconds"`
	FramesPerTick      int     `yaml:"frames_per_tick" toml:"frames_per_tick"` // Simulation frames per terminal tick
}

// BreakoutWindow configures the graphical adapter.
type BreakoutWindow struct {
	FontPath string  `yaml:"font_path" toml:"font_path"` // Empty = built-in bitmap font
	FontSize float64 `yaml:"font_size" toml:"font_size"`
	Scale    float64 `yaml:"scale" toml:"scale"`
}

// BreakoutGameplay holds session options.
type BreakoutGameplay struct {
	StartDifficulty string `yaml:"start_difficulty" toml:"start_difficulty"` // Empty = show the menu
}

// Validate checks every value the simulation depends on.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Physics.BallSpeed <= 0:
		return fmt.Errorf("%w: physics.ball_speed must be positive, got %v", ErrInvalidConfig, c.Physics.BallSpeed)
	case c.Physics.MaxBallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_ball_speed must be positive, got %v", ErrInvalidConfig, c.Physics.MaxBallSpeed)
	case c.Physics.PaddleStep <= 0:
		return fmt.Errorf("%w: physics.paddle_step must be positive, got %v", ErrInvalidConfig, c.Physics.PaddleStep)
	case c.Timing.ClearBannerSeconds < 0:
		return fmt.Errorf("%w: timing.clear_banner_seconds must not be negative, got %v", ErrInvalidConfig, c.Timing.ClearBannerSeconds)
	case c.Timing.FramesPerTick < 1:
		return fmt.Errorf("%w: timing.frames_per_tick must be at least 1, got %d", ErrInvalidConfig, c.Timing.FramesPerTick)
	case c.Window.FontSize <= 0:
		return fmt.Errorf("%w: window.font_size must be positive, got %v", ErrInvalidConfig, c.Window.FontSize)
	case c.Window.Scale <= 0:
		return fmt.Errorf("%w: window.scale must be positive, got %v", ErrInvalidConfig, c.Window.Scale)
	}

	switch strings.ToLower(c.Gameplay.StartDifficulty) {
	case "", "easy", "hard":
	default:
		return fmt.Errorf("%w: gameplay.start_difficulty must be easy or hard, got %q", ErrInvalidConfig, c.Gameplay.StartDifficulty)
	}
	return nil
}

// ClearBanner returns how long the clear banner shows before the summary.
func (c BreakoutConfig) ClearBanner() time.Duration {
	return time.Duration(c.Timing.ClearBannerSeconds * float64(time.Second))
}
