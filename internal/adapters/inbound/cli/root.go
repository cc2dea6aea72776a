package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chartfmt",
		Short:         "Score and fix the formatting of chord charts",
		Long:          "chartfmt parses chord-annotated song charts, scores their formatting quality, detects discrete issues, and applies score-monotonic auto-fixes, one chart at a time or across a whole songbook.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newUndoCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
