package application

import (
	"fmt"

	"github.com/muonsoft/runscan/internal/scanner"
	"github.com/spf13/cobra"
)

func (app *application) newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "Lists scanning strategies",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, args []string) {
			configured := app.factory.StrategyName("")
			for _, name := range scanner.Names() {
				marker := " "
				if name == configured {
					marker = "*"
				}
				fmt.Fprintf(command.OutOrStdout(), "%s %s\n", marker, name)
			}
		},
	}
}

func (app *application) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version and build time",
		Args:  cobra.NoArgs,
		// overrides the root hook: no configuration is needed to print the version
		PersistentPreRunE: func(command *cobra.Command, args []string) error {
			return nil
		},
		Run: func(command *cobra.Command, args []string) {
			fmt.Fprintf(command.OutOrStdout(), "runscan version %s, build time %s\n", app.options.Version, app.options.BuildTime)
		},
	}
}
