package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zerobrew/zbstrap/internal/app"
)

// CLI carries state shared by the subcommands. The container is built
// after flag parsing so --verbose reaches the logger.
type CLI struct {
	container *app.Container
	verbose   bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd() *cobra.Command {
	cli := &CLI{}

	root := &cobra.Command{
		Use:   "zbstrap",
		Short: "zbstrap - zerobrew bootstrap installer",
		Long: "zbstrap bootstraps a zerobrew installation: it resolves install\n" +
			"locations, builds and places the zb binary, wires your shell\n" +
			"startup file, and can reverse all of it symmetrically.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			container, err := app.BuildContainer(cmd.Context(), cli.verbose || envVerbose())
			if err != nil {
				return err
			}
			cli.container = container
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cli.container != nil {
				cli.container.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&cli.verbose, "verbose", false, "Enable verbose logging")

	root.AddCommand(newInstallCommand(cli))
	root.AddCommand(newUninstallCommand(cli))
	root.AddCommand(newStatusCommand(cli))
	root.AddCommand(newDoctorCommand(cli))
	root.AddCommand(newHistoryCommand(cli))
	return root
}

func envVerbose() bool {
	v := os.Getenv("ZBSTRAP_DEBUG")
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
