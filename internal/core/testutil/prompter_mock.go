package testutil

import (
	"fmt"

	"github.com/ghostescript/alias/internal/core/ports"
)

// ScriptedAnswer is one reply of a ScriptedPrompter. Err, when set, is
// returned instead of Text.
type ScriptedAnswer struct {
	Text string
	Err  error
}

// ScriptedPrompter replays a fixed list of answers and records every label it was asked.
type ScriptedPrompter struct {
	Answers []ScriptedAnswer
	Labels  []string
	// Completions holds, per prompt, the candidates the completer returned (nil when none was given).
	Completions [][]string
	Closed      bool
}

// Answers builds answers from plain strings.
func Answers(texts ...string) []ScriptedAnswer {
	out := make([]ScriptedAnswer, len(texts))
	for i, t := range texts {
		out[i] = ScriptedAnswer{Text: t}
	}
	return out
}

func (p *ScriptedPrompter) Prompt(label string, complete ports.Completer) (string, error) {
	p.Labels = append(p.Labels, label)
	if complete != nil {
		p.Completions = append(p.Completions, complete())
	} else {
		p.Completions = append(p.Completions, nil)
	}
	if len(p.Answers) == 0 {
		return "", fmt.Errorf("ScriptedPrompter: no answer left for %q: %w", label, ports.ErrExitRequested)
	}
	a := p.Answers[0]
	p.Answers = p.Answers[1:]
	return a.Text, a.Err
}

func (p *ScriptedPrompter) Close() error {
	p.Closed = true
	return nil
}

var _ ports.Prompter = (*ScriptedPrompter)(nil)
