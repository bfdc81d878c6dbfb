package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/fonts"
	"github.com/vovakirdan/blockbreak/internal/platform/window"
)

var (
	flagFont             string
	flagWindowDifficulty string
	flagScale            float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play Block Breaker with the keyboard.

Controls:
  Left/A      - Move paddle left
  Right/D     - Move paddle right
  1           - Start in easy mode
  2           - Start in hard mode
  Esc/Q       - Quit

Without --font the window uses DejaVu Sans Bold when installed and the
bundled Go Bold face otherwise. A font that is set but cannot be loaded
stops the program.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TrueType/OpenType font")
	windowCmd.Flags().StringVar(&flagWindowDifficulty, "difficulty", "", "Skip the menu and start in this mode: easy, hard")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale factor (0 = use config)")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if err := checkDifficulty(flagWindowDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	loaded, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	cfg := loaded.Config
	logger.Info("config loaded", "source", loaded.Source)

	fontPath := cfg.Window.FontPath
	if flagFont != "" {
		fontPath = flagFont
	}
	faces, err := fonts.Load(fontPath, cfg.Window.FontSize)
	if err != nil {
		logger.Error("failed to load font", "path", fontPath, "err", err)
		return err
	}
	logger.Debug("font loaded", "source", faces.Source, "size", cfg.Window.FontSize)

	if flagWindowDifficulty != "" {
		cfg.Gameplay.StartDifficulty = flagWindowDifficulty
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := breakout.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  window.Width,
		ScreenH:  window.Height,
		TickRate: 60,
		Seed:     seed,
	})

	scale := cfg.Window.Scale
	if flagScale > 0 {
		scale = flagScale
	}
	return window.NewEngine(game, faces, logger).Run(scale)
}
