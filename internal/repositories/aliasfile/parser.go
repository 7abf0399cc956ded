package aliasfile

import (
	"regexp"
	"strings"

	"github.com/ghostescript/alias/internal/core/domain/alias"
)

var (
	aliasLinePattern     = regexp.MustCompile(`^\s*alias\s+([a-zA-Z0-9_]+)=`)
	functionStartPattern = regexp.MustCompile(`^\s*([a-zA-Z0-9_]+)\s*\(\)\s*\{`)
	closingBracePattern  = regexp.MustCompile(`^\s*\}\s*(#.*)?$`)
)

// splitLines splits content into lines, each keeping its "\n" terminator.
// The last line has no terminator when the content does not end in one.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// classifyLine matches a single line against the alias and function-start patterns.
func classifyLine(raw string) (alias.Kind, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return alias.KindOther, ""
	}
	if m := aliasLinePattern.FindStringSubmatch(trimmed); m != nil {
		return alias.KindAlias, m[1]
	}
	if m := functionStartPattern.FindStringSubmatch(trimmed); m != nil {
		return alias.KindFunction, m[1]
	}
	return alias.KindOther, ""
}

// closesOnSameLine reports whether a function declaration line also closes
// its body, as in `f() { echo hi; }`. Braces after the opening one are
// counted outside quotes and comments, so `${1}` and `{a,b}` balance out
// and `mkcd() { mkdir -p ${1}` stays open.
func closesOnSameLine(trimmed string) bool {
	loc := functionStartPattern.FindStringIndex(trimmed)
	if loc == nil {
		return false
	}
	rest := trimmed[loc[1]:]
	depth := 1
	var quote byte
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\\':
			i++
		case c == '\'' || c == '"':
			quote = c
		case c == '#' && (i == 0 || rest[i-1] == ' ' || rest[i-1] == '\t'):
			return false
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

/*
parseDocument is the first pass over the file: every line is classified on
its own, then lines are grouped into entries. A function block runs from its
declaration to the first standalone closing-brace line; lines inside the
body never start entries of their own.
*/
func parseDocument(path, content string) alias.Document {
	raw := splitLines(content)
	doc := alias.Document{
		Path:  path,
		Lines: make([]alias.Line, len(raw)),
	}
	for i, r := range raw {
		kind, name := classifyLine(r)
		doc.Lines[i] = alias.Line{Raw: r, Kind: kind, Name: name}
	}

	for i := 0; i < len(doc.Lines); i++ {
		line := doc.Lines[i]
		switch line.Kind {
		case alias.KindAlias:
			doc.Entries = append(doc.Entries, alias.Entry{Name: line.Name, Kind: alias.KindAlias, Start: i, End: i})
		case alias.KindFunction:
			entry := alias.Entry{Name: line.Name, Kind: alias.KindFunction, Start: i, End: i}
			if !closesOnSameLine(line.Text()) {
				if end := findClosingBrace(doc.Lines, i+1); end >= 0 {
					entry.End = end
				} else {
					// Later lines still get their own entries.
					entry.Unterminated = true
				}
			}
			doc.Entries = append(doc.Entries, entry)
			i = entry.End
		}
	}
	return doc
}

func findClosingBrace(lines []alias.Line, from int) int {
	for j := from; j < len(lines); j++ {
		if closingBracePattern.MatchString(lines[j].Text()) {
			return j
		}
	}
	return -1
}
