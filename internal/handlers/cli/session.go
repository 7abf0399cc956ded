package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ghostescript/alias/internal/core/ports"
	"github.com/ghostescript/alias/internal/handlers/ui"
)

// flowResult is what an interactive flow reports back to the menu.
type flowResult int

const (
	flowCompleted flowResult = iota
	flowCancelled
)

const (
	msgEmptyInput    = "Input cannot be empty. Please try again..."
	msgInvalidReturn = "Invalid choice. Please input 'y', 'n', or press Enter to return to the main menu. Try again..."
	msgInvalidDelete = "Invalid choice. Please input 'y', 'n', or press Enter to confirm deletion. Try again..."
	msgCancelled     = "Operation cancelled. Returning to main menu."
)

// session drives the interactive menu over one prompter.
type session struct {
	svc      ports.AliasManagementService
	prompter ports.Prompter
	out      io.Writer
	logger   *log.Logger
}

func newSession(svc ports.AliasManagementService, prompter ports.Prompter, out io.Writer, logger *log.Logger) *session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &session{svc: svc, prompter: prompter, out: out, logger: logger}
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// completeNames re-reads the alias file on every call.
func (s *session) completeNames() []string {
	names, err := s.svc.ListNames()
	if err != nil {
		s.logger.Debug("completion unavailable", "err", err)
		return nil
	}
	return names
}

func staticCompleter(words ...string) ports.Completer {
	return func() []string { return words }
}

// askNonEmpty prompts until the answer is not blank.
func (s *session) askNonEmpty(label string, complete ports.Completer) (string, error) {
	for {
		answer, err := s.prompter.Prompt(ui.PromptColor(label), complete)
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(answer); trimmed != "" {
			return trimmed, nil
		}
		s.println(ui.WarningColor(msgEmptyInput))
	}
}

// askYesNo accepts y, n or an empty answer (which selects defaultYes),
// case-insensitively. Anything else prints invalidMsg and asks again.
func (s *session) askYesNo(label string, defaultYes bool, invalidMsg string) (bool, error) {
	for {
		answer, err := s.prompter.Prompt(ui.PromptColor(label), staticCompleter("y", "n"))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		case "":
			return defaultYes, nil
		}
		s.println(ui.WarningColor(invalidMsg))
	}
}

// aliasFilePath resolves the path for display, falling back to the usual location.
func (s *session) aliasFilePath() string {
	path, err := s.svc.AliasFilePath()
	if err != nil {
		s.logger.Warn("could not resolve alias file", "err", err)
		return "~/.bash_aliases"
	}
	return path
}

/*
run shows the banner and loops over the main menu until the user picks
"Help message and Exit" or interrupts the menu prompt. An interrupt inside
a flow only returns here. I/O errors from a flow are reported and the menu
continues.
*/
func (s *session) run() error {
	ui.PrintBanner(s.out)

	for {
		ui.PrintMenu(s.out)
		choice, err := s.askNonEmpty("Enter your choice [1-3]: ", staticCompleter("1", "2", "3"))
		if err != nil {
			if errors.Is(err, ports.ErrCancelled) || errors.Is(err, ports.ErrExitRequested) {
				s.println(ui.InfoColor(fmt.Sprintf("\nExiting %s Menu.", ui.AppTitle)))
				return nil
			}
			return err
		}

		var result flowResult
		switch choice {
		case "1":
			result, err = s.createFlow()
		case "2":
			result, err = s.manageFlow()
		case "3":
			ui.PrintHelp(s.out, s.aliasFilePath())
			s.println(ui.InfoColor(fmt.Sprintf("Exiting %s Menu", ui.AppTitle)))
			s.println()
			return nil
		default:
			s.println(ui.ErrorColor("Invalid choice. Please enter 1, 2, or 3."))
			continue
		}

		switch {
		case errors.Is(err, ports.ErrExitRequested):
			s.println(ui.InfoColor(fmt.Sprintf("\nExiting %s Menu.", ui.AppTitle)))
			return nil
		case err != nil:
			s.logger.Error("operation failed", "err", err)
			s.println(ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		case result == flowCancelled:
			s.println(ui.InfoColor("\n" + msgCancelled))
		}
	}
}

// cancelled folds a prompt cancellation into a flow result.
func cancelled(err error) (flowResult, error) {
	if errors.Is(err, ports.ErrCancelled) {
		return flowCancelled, nil
	}
	return flowCompleted, err
}
