package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zerobrew/zbstrap/internal/application/lifecycle"
	"github.com/zerobrew/zbstrap/internal/domain"
	"github.com/zerobrew/zbstrap/internal/infrastructure/shell"
)

func newInstallCommand(cli *CLI) *cobra.Command {
	var (
		branch       string
		noModifyPath bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Bootstrap a zerobrew installation",
		Long: `Bootstrap a zerobrew installation.

This command will:
1. Resolve install locations from your platform (override via
   ZEROBREW_DIR, ZEROBREW_BIN, ZEROBREW_ROOT, ZEROBREW_PREFIX or the
   config file)
2. Clone and build the zerobrew working copy
3. Place the zb binary into the bin directory
4. Provision the install root (sudo only for system-owned roots)
5. Add a managed block to your shell startup file
6. Run 'zb init' to finalize product state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			container := cli.container
			cfg := container.Config

			section(out, "Installing %s...", domain.ProductName)
			container.Lifecycle.Progress = func(step domain.Step, detail string) {
				stepDone(out, step, detail)
			}

			result, err := container.Lifecycle.Install(cmd.Context(), lifecycle.InstallRequest{
				Platform:     container.Platform,
				Overrides:    container.Overrides(),
				RepoURL:      cfg.RepoURL,
				Branch:       branchOr(branch, cfg.Branch),
				NoModifyPath: noModifyPath || cfg.NoModifyPath,
			})
			if err != nil {
				return err
			}

			printResultWarnings(out, result)
			section(out, "Installation complete!")
			if noModifyPath || cfg.NoModifyPath {
				fmt.Fprintf(out, "\nYour shell startup file was left untouched. To finish setup,\nadd this to it yourself:\n\n%s\n", shell.RenderBlock(result.Locations))
				return nil
			}
			fmt.Fprintf(out, "\nTo activate, restart your terminal or run:\n")
			fmt.Fprintf(out, "  source %s\n", container.ProfileEditor.TargetFile(container.Platform))
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Working-copy branch (default: upstream default)")
	cmd.Flags().BoolVar(&noModifyPath, "no-modify-path", false, "Skip shell startup file changes")

	return cmd
}

func branchOr(flag, cfg string) string {
	if flag != "" {
		return flag
	}
	return cfg
}
