package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runInteractive starts the menu loop on the terminal.
func runInteractive(cmd *cobra.Command, rt *app) error {
	if rt.svc == nil {
		return fmt.Errorf("alias management service not initialized")
	}
	prompter, err := rt.prompter()
	if err != nil {
		return err
	}
	defer prompter.Close()

	return newSession(rt.svc, prompter, cmd.OutOrStdout(), rt.logger).run()
}
