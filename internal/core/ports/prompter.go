package ports

import "errors"

// ErrCancelled is returned by a Prompter when the user interrupts the prompt
// (Ctrl-C or Ctrl-D). Callers unwind to the enclosing menu.
var ErrCancelled = errors.New("prompt cancelled by user")

// ErrExitRequested is returned by a Prompter when the user asks to leave the
// program from any prompt (Ctrl-Z).
var ErrExitRequested = errors.New("exit requested by user")

// Completer supplies completion candidates. It is called every time the user
// asks for completion, so the candidates always reflect the current file.
type Completer func() []string

// Prompter reads one line of user input.
type Prompter interface {
	Prompt(label string, complete Completer) (string, error)
	Close() error
}
