package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zerobrew/zbstrap/internal/domain"
)

func newStatusCommand(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show resolved locations and installation state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			container := cli.container

			locations := container.Resolver.Resolve(container.Platform, container.Overrides())
			profilePath := container.ProfileEditor.TargetFile(container.Platform)

			section(out, "%s status", domain.ProductName)
			fmt.Fprintf(out, "  Data dir:     %s %s\n", locations.DataDir, presence(locations.DataDir))
			fmt.Fprintf(out, "  Bin dir:      %s\n", locations.BinDir)
			fmt.Fprintf(out, "  Binary:       %s %s\n", locations.BinaryPath(), presence(locations.BinaryPath()))
			fmt.Fprintf(out, "  Install root: %s %s\n", locations.InstallRoot, presence(locations.InstallRoot))
			fmt.Fprintf(out, "  Prefix:       %s\n", locations.Prefix)
			if container.ProfileEditor.HasMarker(profilePath) {
				fmt.Fprintf(out, "  Profile:      %s (managed block present)\n", profilePath)
			} else {
				fmt.Fprintf(out, "  Profile:      %s (no managed block)\n", profilePath)
			}
			return nil
		},
	}
}

func presence(path string) string {
	if _, err := os.Stat(path); err == nil {
		return "(present)"
	}
	return "(absent)"
}
