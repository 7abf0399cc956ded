package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNamesCommand creates the 'names' subcommand, one name per line.
func NewNamesCommand(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print the alias and function names, sorted and unique.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := rt.svc.ListNames()
			if err != nil {
				return fmt.Errorf("could not list names: %w", err)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
