package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

var flagFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show scoring, ratings and the effective configuration",
	Long: `Prints how runs are scored and rated, followed by the configuration
that play and window would use (after --config and the search path).

Examples:
  blockbreak rules
  blockbreak rules --format toml > ~/.blockbreak/configs/breakout.toml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Config output format: yaml, toml")
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ratingRows lists each rating with the highest score that still earns it.
func ratingRows() [][2]string {
	return [][2]string{
		{"0-50", breakout.RatingChallenging.Banner()},
		{"51-100", breakout.RatingGood.Banner()},
		{"101-190", breakout.RatingGreat.Banner()},
		{fmt.Sprintf("%d", breakout.MaxScore), breakout.RatingPerfect.Banner()},
	}
}

func runRules(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render("Scoring"))
	fmt.Fprintf(out, "  %d blocks, %d points each, %d points maximum\n",
		breakout.BlockCount, breakout.PointsPerBlock, breakout.MaxScore)
	fmt.Fprintln(out)

	fmt.Fprintln(out, headingStyle.Render("Ratings"))
	for _, row := range ratingRows() {
		fmt.Fprintf(out, "  %-8s %s\n", row[0], row[1])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, headingStyle.Render("Configuration"))
	fmt.Fprintln(out, dimStyle.Render("# source: "+loaded.Source))
	return config.Encode(out, loaded.Config, flagFormat)
}
