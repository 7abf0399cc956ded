package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghostescript/alias/internal/core/ports"
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrNothingToDelete is returned by 'delete' when no requested name was found.
var ErrNothingToDelete = errors.New("no matching aliases/functions were found")

// NewDeleteCommand creates the 'delete' subcommand.
func NewDeleteCommand(rt *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete NAME... | all",
		Short: "Delete aliases/functions from the alias file.",
		Long: `Removes the first entry carrying each NAME. A function is removed from its
declaration through its closing brace. 'all' removes one entry for every name.
Asks for confirmation unless --yes is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteCmd(cmd, rt, splitNames(strings.Join(args, ",")), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func runDeleteCmd(cmd *cobra.Command, rt *app, names []string, yes bool) error {
	out := cmd.OutOrStdout()

	plan, err := rt.svc.PlanDeletion(names)
	if err != nil {
		return err
	}
	printPlan(out, plan)
	if !plan.HasWork() {
		if len(plan.NotFound) > 0 {
			fmt.Fprintln(out, ui.WarningColor("The following input was not found: "+strings.Join(plan.NotFound, ", ")))
		}
		return ErrNothingToDelete
	}

	if !yes {
		prompter, err := rt.prompter()
		if err != nil {
			return err
		}
		defer prompter.Close()

		s := newSession(rt.svc, prompter, out, rt.logger)
		confirmed, err := s.askYesNo(fmt.Sprintf("Are you sure you want to delete %s? [Y/n]: ", ui.JoinNames(plan.Found())), true, msgInvalidDelete)
		if errors.Is(err, ports.ErrCancelled) || errors.Is(err, ports.ErrExitRequested) || (err == nil && !confirmed) {
			fmt.Fprintln(out, ui.InfoColor("Deletion cancelled."))
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := rt.svc.CommitDeletion(plan); err != nil {
		return err
	}
	printDeleted(out, plan)
	return nil
}
