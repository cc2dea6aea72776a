package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/store"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/tui"
	"github.com/chartfmt/chartfmt/internal/application"
)

func newFormatCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
		showDiff   bool
		preset     string
	)

	cmd := &cobra.Command{
		Use:   "format <chart>",
		Short: "Apply auto-fixes to a chart",
		Long:  "Score a chart, apply every auto-fixable issue, and write the formatted text back. Every transformation is recorded as a before/after change.",
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

			result, err := application.NewFormatService().Format(text, opts)
			if err != nil {
				return fmt.Errorf("formatting failed: %w", err)
			}

			if !dryRun && result.FormattedText != result.OriginalText {
				if err := store.New(dir).Store(name, result.FormattedText); err != nil {
					return err
				}
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderChanges(result.Changes, showDiff))
			fmt.Fprintf(out, "\n  %s: %d → %d (%s)\n", name,
				result.Score.Percentage, result.ScoreAfter.Percentage, result.ScoreAfter.Grade)
			if dryRun {
				fmt.Fprintln(out, "  (dry run, nothing written)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show changes without writing the file")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show inline before/after diffs for each change")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the full formatting result as JSON")
	cmd.Flags().StringVar(&preset, "preset", "", "Option preset (standard, minimal, aggressive)")

	return cmd
}
