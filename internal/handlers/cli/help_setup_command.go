package cli

import (
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewHelpSetupCommand prints the instructions for sourcing the alias file.
func NewHelpSetupCommand(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:   "help-setup",
		Short: "Show how to load the alias file from your shell.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rt.svc.AliasFilePath()
			if err != nil {
				return err
			}
			ui.PrintHelp(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
