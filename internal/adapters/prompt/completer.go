package prompt

import (
	"strings"

	"github.com/ghostescript/alias/internal/core/ports"
)

// dynamicCompleter implements readline.AutoCompleter. Candidates are fetched
// from source on every Tab press.
type dynamicCompleter struct {
	source ports.Completer
}

// Do implements the readline.AutoCompleter interface.
func (c *dynamicCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if c.source == nil {
		return nil, 0
	}
	return completeWord(c.source(), line, pos)
}

/*
completeWord completes the word under the cursor against candidates. Words
are separated by commas or whitespace, so "gs, dep<Tab>" completes "dep".
It returns the missing suffixes and the length of the typed prefix, the
shape readline expects.
*/
func completeWord(candidates []string, line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	head := string(line[:pos])
	start := strings.LastIndexAny(head, ", \t") + 1
	word := head[start:]

	var out [][]rune
	for _, c := range candidates {
		if strings.HasPrefix(c, word) && c != word {
			out = append(out, []rune(c[len(word):]))
		}
	}
	return out, len([]rune(word))
}
