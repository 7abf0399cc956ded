package cli

import (
	"fmt"
	"slices"

	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/handlers/ui"
)

// createFlow creates one entry, then offers to create another until declined.
func (s *session) createFlow() (flowResult, error) {
	for {
		if result, err := s.createOne(); err != nil || result == flowCancelled {
			return result, err
		}

		s.println()
		again, err := s.askYesNo("Create another alias/command? [y/N]: ", false, msgInvalidReturn)
		if err != nil {
			return cancelled(err)
		}
		if !again {
			return flowCompleted, nil
		}
	}
}

func (s *session) createOne() (flowResult, error) {
	s.println()
	command, err := s.askNonEmpty("Enter the command you want to alias: ", nil)
	if err != nil {
		return cancelled(err)
	}

	var name string
	for {
		s.println()
		name, err = s.askNonEmpty("Enter the alias name: ", nil)
		if err != nil {
			return cancelled(err)
		}
		if alias.IsValidName(name) {
			break
		}
		s.println(ui.WarningColor(fmt.Sprintf("'%s' is not a valid name. Use letters, digits and underscores only.", name)))
	}

	if slices.Contains(s.completeNames(), name) {
		s.println(ui.WarningColor(fmt.Sprintf("'%s' is already defined. The definition added last wins when the file is sourced.", name)))
	}

	if err := s.svc.CreateEntry(name, command); err != nil {
		return flowCompleted, err
	}

	path := s.aliasFilePath()
	s.println(ui.SuccessColor(fmt.Sprintf("Alias '%s' for command '%s' saved to %s", name, command, path)))
	ui.PrintCreatedInstructions(s.out, path)
	return flowCompleted, nil
}
