package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/gitinfo"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/journal"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/tui"
	"github.com/chartfmt/chartfmt/internal/application"
	"github.com/chartfmt/chartfmt/internal/domain"
)

func newScoreCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    int
		showHistory bool
		preset      string
	)

	cmd := &cobra.Command{
		Use:   "score <chart>",
		Short: "Score a chart's formatting quality",
		Long:  "Parse a chord chart and produce its five formatting sub-scores, overall percentage and letter grade. The chart is not modified.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, name, text, err := loadChart(args[0])
			if err != nil {
				return err
			}

			opts, err := loadOptions(dir, preset)
			if err != nil {
				return err
			}
			opts.AnalyzeOnly = true

			result, err := application.NewFormatService().Format(text, opts)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}
			score := result.Score

			// Save to history, stamped with the commit hash if the songbook
			// is under version control.
			entry := domain.ScoreEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				File:       name,
				Percentage: score.Percentage,
				Grade:      score.Grade,
			}
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(dir); err == nil {
				entry.CommitHash = hash
			}
			hist := journal.New()
			_ = hist.AppendScore(dir, entry) // best-effort

			if showHistory {
				entries, err := hist.LoadScores(dir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, score); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderScore(name, score))
			}

			if ciMode && score.Percentage < minScore {
				return fmt.Errorf("score %d is below minimum %d", score.Percentage, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output score as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show score history for the chart's directory")
	cmd.Flags().StringVar(&preset, "preset", "", "Option preset (standard, minimal, aggressive)")

	return cmd
}
