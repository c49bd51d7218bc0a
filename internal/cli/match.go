package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lapjv/score"
)

// newMatchCmd builds the match subcommand: read two label files, pair
// them, print the pairs and the total suitability.
func newMatchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "match A_FILE B_FILE",
		Short: "Optimally pair the labels in two files",
		Long:  `match reads one label per line from A_FILE and B_FILE (blank lines and #-comments are skipped), computes pairwise suitability scores, solves the assignment, and prints each pair with its score. When the files differ in length, the surplus labels stay unmatched.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			rows, err := readLines(args[0])
			if err != nil {
				return err
			}
			cols, err := readLines(args[1])
			if err != nil {
				return err
			}
			logger.Debugf("read %d labels from %s, %d from %s", len(rows), args[0], len(cols), args[1])

			m, err := score.Match(rows, cols, cfg.options()...)
			if err != nil {
				return fmt.Errorf("cli: match: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, p := range m.Pairs {
				fmt.Fprintf(out, "%s\t%s\t%.3f\n", p.A, p.B, p.Score)
			}
			fmt.Fprintf(out, "total\t%.3f\n", m.Total)

			logger.Infof("matched %d pairs (total suitability %.3f)", len(m.Pairs), m.Total)

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML scoring config")

	return cmd
}
