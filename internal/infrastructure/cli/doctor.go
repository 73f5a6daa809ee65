package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zerobrew/zbstrap/internal/domain"
)

func newDoctorCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the bootstrap environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			container := cli.container

			report := container.DoctorService.Run(container.Platform, container.Overrides())
			for _, check := range report.Checks {
				switch check.Status {
				case domain.HealthOK:
					fmt.Fprintf(out, "  %s %s: %s\n", okStyle.Sprint("✓"), check.Name, check.Details)
				case domain.HealthWarn:
					fmt.Fprintf(out, "  %s %s: %s\n", warnStyle.Sprint("!"), check.Name, check.Details)
				default:
					fmt.Fprintf(out, "  %s %s: %s\n", errStyle.Sprint("✗"), check.Name, check.Details)
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
