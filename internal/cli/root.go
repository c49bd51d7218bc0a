package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the lapjv CLI under ctx and returns the first command
// error. ctx should be signal-aware so Ctrl-C cancels cleanly.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands and the
// persistent logging setup.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lapjv",
		Short:        "lapjv optimally pairs the labels in two lists",
		Long:         `lapjv solves the linear assignment problem over two lists of free-text labels: every label in the first list is paired with the most suitable label in the second so that the total suitability is maximal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newMatchCmd())

	return root
}
