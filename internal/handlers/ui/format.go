package ui

import (
	"fmt"
	"strings"

	"github.com/ghostescript/alias/internal/core/domain/alias"
)

// FormatListedLine renders "N: line" with the declared name highlighted on
// alias and function-declaration lines.
func FormatListedLine(l alias.ListedLine) string {
	prefix := DetailColor(fmt.Sprintf("%d:", l.Index))
	text := l.Text
	switch l.Kind {
	case alias.KindAlias:
		// Text starts with "alias", then whitespace, then the name.
		rest := strings.TrimSpace(strings.TrimPrefix(text, "alias"))
		text = AliasKeywordColor("alias") + " " + highlightName(rest, l.Name)
	case alias.KindFunction:
		text = highlightName(text, l.Name)
	}
	if l.Unterminated {
		text += " " + WarningColor("(no closing brace)")
	}
	return prefix + " " + text
}

func highlightName(text, name string) string {
	i := strings.Index(text, name)
	if name == "" || i < 0 {
		return text
	}
	return text[:i] + AliasNameColor(name) + AliasBodyColor(text[i+len(name):])
}

// JoinNames formats names as "a", "a and b" or "a, b and c".
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
