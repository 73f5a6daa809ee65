package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newHistoryCommand(cli *CLI) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List prior lifecycle runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			runs, err := cli.container.Receipts.Runs(limit)
			if err != nil {
				return fmt.Errorf("read receipts: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}
			for _, run := range runs {
				line := fmt.Sprintf("%s  %-9s  %s",
					run.Timestamp.Format(time.RFC3339), run.Operation, run.Outcome)
				if run.FailedStep != "" {
					line += fmt.Sprintf("  (failed at %q: %s)", run.FailedStep, run.Error)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "Maximum runs to list")

	return cmd
}
