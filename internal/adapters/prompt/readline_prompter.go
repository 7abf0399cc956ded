package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/ghostescript/alias/internal/core/ports"
)

const defaultHistoryLimit = 500

// ReadlinePrompter reads user input with line editing, an in-memory history
// shared by every prompt, and tab completion.
type ReadlinePrompter struct {
	rl            *readline.Instance
	completer     *dynamicCompleter
	exitRequested bool
}

// NewReadlinePrompter creates a prompter on the process terminal.
// historyLimit <= 0 selects the default.
func NewReadlinePrompter(historyLimit int) (ports.Prompter, error) {
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}
	p := &ReadlinePrompter{completer: &dynamicCompleter{}}
	rl, err := readline.NewEx(&readline.Config{
		InterruptPrompt:     "^C",
		EOFPrompt:           "^D",
		HistoryLimit:        historyLimit,
		HistorySearchFold:   true,
		AutoComplete:        p.completer,
		FuncFilterInputRune: p.filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal input: %w", err)
	}
	p.rl = rl
	return p, nil
}

// Ctrl-Z leaves the program from any prompt. It is turned into an interrupt
// so Readline returns, and remembered so Prompt can tell the two apart.
func (p *ReadlinePrompter) filterInput(r rune) (rune, bool) {
	if r == readline.CharCtrlZ {
		p.exitRequested = true
		return readline.CharInterrupt, true
	}
	return r, true
}

// Prompt implements the ports.Prompter interface.
func (p *ReadlinePrompter) Prompt(label string, complete ports.Completer) (string, error) {
	p.completer.source = complete
	p.exitRequested = false
	p.rl.SetPrompt(label)

	line, err := p.rl.Readline()
	if err != nil {
		if p.exitRequested {
			return "", ports.ErrExitRequested
		}
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ports.ErrCancelled
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// Close implements the ports.Prompter interface.
func (p *ReadlinePrompter) Close() error {
	return p.rl.Close()
}
