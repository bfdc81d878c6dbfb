package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/platform/tui"
)

var (
	flagDifficulty string
	flagHideHelp   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Block Breaker in the terminal.

Controls:
  Left/A/H    - Move paddle left
  Right/D/L   - Move paddle right
  1           - Start in easy mode (menu and end screens)
  2           - Start in hard mode (menu and end screens)
  Ctrl+S      - Save a screenshot
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - The ball keeps its speed after each paddle bounce
  hard   - Each paddle bounce picks a new random speed

Examples:
  blockbreak play
  blockbreak play --difficulty hard
  blockbreak play --config ./my-breakout.toml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu and start in this mode: easy, hard")
	playCmd.Flags().BoolVar(&flagHideHelp, "no-help", false, "Hide the key help footer")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkDifficulty(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	loaded, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", loaded.Source)
	if flagDifficulty != "" {
		loaded.Config.Gameplay.StartDifficulty = flagDifficulty
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := breakout.NewWithConfig(loaded.Config)
	if err := tui.Run(game, cfg, tui.Options{Logger: logger, HideHelp: flagHideHelp}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// checkDifficulty rejects names ParseDifficulty does not know. Empty means show the menu.
func checkDifficulty(name string) error {
	if name == "" {
		return nil
	}
	_, err := breakout.ParseDifficulty(name)
	return err
}
