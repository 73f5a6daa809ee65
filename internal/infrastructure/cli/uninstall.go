package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zerobrew/zbstrap/internal/application/lifecycle"
	"github.com/zerobrew/zbstrap/internal/domain"
)

func newUninstallCommand(cli *CLI) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove a zerobrew installation",
		Long: `Remove a zerobrew installation, mirroring install.

This command will:
1. Run 'zb reset' to tear down product state (best effort)
2. Remove the zb binary, and the bin directory only if empty
3. Remove the working copy
4. With --purge, remove the install root and all downloaded packages
5. Remove the managed block and any loose managed lines from your
   shell startup file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			container := cli.container

			section(out, "Uninstalling %s...", domain.ProductName)
			container.Lifecycle.Progress = func(step domain.Step, detail string) {
				stepDone(out, step, detail)
			}

			result, err := container.Lifecycle.Uninstall(cmd.Context(), lifecycle.UninstallRequest{
				Platform:  container.Platform,
				Overrides: container.Overrides(),
				Purge:     purge,
			})
			if err != nil {
				return classifyUninstallError(result, err)
			}

			printResultWarnings(out, result)
			section(out, "Uninstallation complete!")
			if !purge {
				fmt.Fprintf(out, "\nDownloaded packages were kept under %s.\n", result.Locations.InstallRoot)
				fmt.Fprintf(out, "Run 'zbstrap uninstall --purge' to remove them as well.\n")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also remove the install root and all downloaded package content")

	return cmd
}

// classifyUninstallError keeps the not-installed case distinct while
// still surfacing it as a failed run (non-zero exit, stderr message).
func classifyUninstallError(result domain.LifecycleResult, err error) error {
	if errors.Is(err, domain.ErrNotInstalled) {
		return fmt.Errorf("%w (no binary at %s)", domain.ErrNotInstalled, result.Locations.BinaryPath())
	}
	return err
}
