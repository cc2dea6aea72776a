package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/tui"
	"github.com/chartfmt/chartfmt/internal/application"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		preset     string
	)

	cmd := &cobra.Command{
		Use:   "check <chart>",
		Short: "List a chart's formatting issues and suggestions",
		Long:  "Detect discrete formatting issues (with severity and auto-fixability) and advisory suggestions without modifying the chart.",
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
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, struct {
					Score       any `json:"score"`
					Issues      any `json:"issues"`
					Suggestions any `json:"suggestions"`
				}{result.Score, result.Issues, result.Suggestions})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderScore(name, result.Score))
			fmt.Fprint(out, tui.RenderIssues(result.Issues))
			if s := tui.RenderSuggestions(result.Suggestions); s != "" {
				fmt.Fprintln(out)
				fmt.Fprint(out, s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output issues and suggestions as JSON")
	cmd.Flags().StringVar(&preset, "preset", "", "Option preset (standard, minimal, aggressive)")

	return cmd
}
