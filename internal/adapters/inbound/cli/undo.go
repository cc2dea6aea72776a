package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chartfmt/chartfmt/internal/adapters/outbound/journal"
	"github.com/chartfmt/chartfmt/internal/adapters/outbound/store"
	"github.com/chartfmt/chartfmt/internal/application"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <dir>",
		Short: "Revert the last batch run in a songbook directory",
		Long:  "Restore every chart the last 'chartfmt batch' run formatted to its original text. Idempotent; charts that failed formatting were never touched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			result, err := journal.New().LoadBatch(dir)
			if err != nil {
				return fmt.Errorf("loading batch journal: %w", err)
			}
			if result == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no batch to undo")
				return nil
			}

			svc := application.NewBatchService(application.NewFormatService(), 0)
			if err := svc.UndoAll(result, store.New(dir)); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "restored %d chart(s)\n", result.SuccessCount)
			return nil
		},
	}

	return cmd
}
