package cli

import (
	"fmt"

	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

func NewAddCommand(rt *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME -- COMMAND [ARG...]",
		Short: "Append a new alias function to the alias file.",
		Long: `Writes NAME() { COMMAND } to the alias file, preceded by a blank line.
A single COMMAND argument is written as given; several arguments are
shell-quoted and joined.`,
		Example: `  aliasmgr add ll -- ls -la
  aliasmgr add gs "git status --short"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, rt, args[0], joinCommand(args[1:]))
		},
	}
	return cmd
}

// joinCommand keeps a single argument verbatim and shell-quotes several.
func joinCommand(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}

func runAddCmd(cmd *cobra.Command, rt *app, name, command string) error {
	if err := rt.svc.CreateEntry(name, command); err != nil {
		return err
	}
	path, err := rt.svc.AliasFilePath()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Alias '%s' for command '%s' saved to %s", name, command, path)))
	ui.PrintActivationHint(out, path)
	return nil
}
