package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/handlers/ui"
)

const deletePromptLabel = "Enter the name(s) of the alias to delete (comma-separated for multiple, or 'all' to delete everything): "

// manageFlow lists the alias file and optionally enters deletion rounds.
func (s *session) manageFlow() (flowResult, error) {
	listing, err := s.svc.ListEntries()
	if err != nil {
		return flowCompleted, err
	}
	if len(listing.Lines) == 0 {
		s.println(ui.InfoColor(fmt.Sprintf("\nNo aliases or functions found in %s.", listing.Path)))
		return flowCompleted, nil
	}

	printListing(s.out, listing)

	s.println()
	wantsDelete, err := s.askYesNo("Delete an alias/command? [y/N]: ", false, msgInvalidReturn)
	if err != nil {
		return cancelled(err)
	}
	if !wantsDelete {
		return flowCompleted, nil
	}
	return s.deleteRounds()
}

// deleteRounds asks for names, confirms and deletes, until the user stops.
// The file is written only after a confirmed round.
func (s *session) deleteRounds() (flowResult, error) {
	for {
		listing, err := s.svc.ListEntries()
		if err != nil {
			return flowCompleted, err
		}
		if len(listing.Lines) == 0 {
			s.println(ui.InfoColor(fmt.Sprintf("\nNo aliases or functions left in %s.", s.aliasFilePath())))
			return flowCompleted, nil
		}

		s.println()
		input, err := s.askNonEmpty(deletePromptLabel, s.completeNames)
		if err != nil {
			return cancelled(err)
		}
		requested := splitNames(input)
		if len(requested) == 0 {
			s.println(ui.WarningColor("No names entered for deletion."))
			continue
		}

		plan, err := s.svc.PlanDeletion(requested)
		if err != nil {
			return flowCompleted, err
		}
		printPlan(s.out, plan)

		if !plan.HasWork() {
			if len(plan.NotFound) > 0 {
				s.println(ui.WarningColor("\nThe following input was not found: " + strings.Join(plan.NotFound, ", ")))
			} else if len(plan.Malformed) == 0 {
				s.println(ui.WarningColor("No matching aliases/functions were found."))
			}
			continue
		}

		s.println()
		confirmed, err := s.askYesNo(fmt.Sprintf("Are you sure you want to delete %s? [Y/n]: ", ui.JoinNames(plan.Found())), true, msgInvalidDelete)
		if err != nil {
			return cancelled(err)
		}
		if !confirmed {
			s.println(ui.InfoColor("Deletion cancelled."))
			continue
		}

		if err := s.svc.CommitDeletion(plan); err != nil {
			return flowCompleted, err
		}
		printDeleted(s.out, plan)

		s.println()
		again, err := s.askYesNo("Delete another? [y/N]: ", false, msgInvalidReturn)
		if err != nil {
			return cancelled(err)
		}
		if !again {
			return flowCompleted, nil
		}
	}
}

// splitNames splits comma-separated input into trimmed, non-empty names.
func splitNames(input string) []string {
	var names []string
	for _, part := range strings.Split(input, ",") {
		if n := strings.TrimSpace(part); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func printListing(w io.Writer, listing alias.Listing) {
	fmt.Fprintln(w, ui.HeaderColor(fmt.Sprintf("\n--- Current Aliases/Commands in %s ---", listing.Path)))
	for _, l := range listing.Lines {
		fmt.Fprintln(w, ui.FormatListedLine(l))
	}
	fmt.Fprintln(w, ui.HeaderColor("----------------------------------------------------"))
}

func printPlan(w io.Writer, plan alias.DeletionPlan) {
	for _, e := range plan.Marked {
		fmt.Fprintf(w, "Marking for deletion: %s\n", plan.Source.Lines[e.Start].Text())
	}
	if len(plan.Malformed) > 0 {
		fmt.Fprintln(w, ui.WarningColor(fmt.Sprintf("Not deleting %s: function has no closing brace. Fix the file by hand first.", ui.JoinNames(plan.Malformed))))
	}
}

func printDeleted(w io.Writer, plan alias.DeletionPlan) {
	fmt.Fprintln(w, ui.SuccessColor("\nSuccessfully deleted: "+strings.Join(plan.Found(), ", ")))
	if len(plan.NotFound) > 0 {
		fmt.Fprintln(w, ui.WarningColor("Note: The following input was not found: "+strings.Join(plan.NotFound, ", ")))
	}
	fmt.Fprintf(w, "Please run source %s to apply changes to your current session.\n", plan.Path)
	fmt.Fprintln(w)
	ui.PrintMultiShellNote(w, plan.Path)
}
