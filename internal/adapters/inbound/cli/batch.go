package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/gitinfo"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/journal"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/store"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/tui"
	"github.com/chartfmt/chartfmt/internal/application"
)

func newBatchCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
		preset     string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Format every chart in a songbook directory",
		Long:  "Run the formatting pipeline over every chart file in a directory. Documents are processed independently; a failure in one never aborts the run. The pre-fix texts are journaled so 'chartfmt undo' can revert the whole batch.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			opts, err := loadOptions(dir, preset)
			if err != nil {
				return err
			}

			st := store.New(dir)
			docs, err := st.LoadAll()
			if err != nil {
				return fmt.Errorf("collecting charts: %w", err)
			}
			if len(docs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no chart files found")
				return nil
			}

			out := cmd.OutOrStdout()
			progress := func(fraction float64) {
				if !jsonOutput {
					fmt.Fprintf(out, "\r  formatting %d charts… %3.0f%%", len(docs), fraction*100)
				}
			}

			svc := application.NewBatchService(application.NewFormatService(), workers)
			result := svc.Format(cmd.Context(), docs, opts, progress)
			if !jsonOutput {
				fmt.Fprint(out, "\n\n")
			}

			if hash, err := gitinfo.New().CommitHash(dir); err == nil {
				result.CommitHash = hash
			}

			if !dryRun {
				// Re-apply the formatted texts; the engine never writes.
				for id, res := range result.Results {
					if res.FormattedText == res.OriginalText {
						continue
					}
					if err := st.Store(id, res.FormattedText); err != nil {
						return fmt.Errorf("writing %s: %w", id, err)
					}
				}
				if err := journal.New().SaveBatch(dir, result); err != nil {
					return fmt.Errorf("saving batch journal: %w", err)
				}
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(out, tui.RenderBatch(result))
			if dryRun {
				fmt.Fprintln(out, "\n  (dry run, nothing written)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Analyze and report without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the batch result as JSON")
	cmd.Flags().StringVar(&preset, "preset", "", "Option preset (standard, minimal, aggressive)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers (0 = one per CPU)")

	return cmd
}
