// blockbreak is a single-player block breaker for the terminal or a desktop window.
//
// Usage:
//
//	blockbreak play            - Play in the terminal
//	blockbreak window          - Play in an 800x600 window
//	blockbreak rules           - Show scoring and the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set terminal tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom YAML or TOML config
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreak",
	Short: "Block Breaker - Clear the wall with a paddle and a ball",
	Long: `Block Breaker is a single-player arcade game. Move the paddle to keep
the ball in play and destroy all twenty blocks.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  rules    - Show scoring, ratings and the effective configuration

Examples:
  blockbreak play
  blockbreak play --difficulty hard
  blockbreak window --font ./DejaVuSans-Bold.ttf
  blockbreak rules --format toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(rulesCmd)
}

// newLogger builds the process logger. When no log file is set, logs go to
// fallback; the terminal UI passes io.Discard so they do not corrupt the screen.
// The returned close function must be called once the logger is no longer used.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          "blockbreak",
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}
