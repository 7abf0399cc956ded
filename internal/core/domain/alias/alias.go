/*
Package alias defines the core domain entities for entries stored in a shell
alias file.
*/
package alias

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind tells what a line or entry declares.
type Kind int

const (
	KindOther Kind = iota
	KindAlias
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindFunction:
		return "function"
	default:
		return "other"
	}
}

// Line is one physical line of the alias file. Raw keeps the line terminator
// so a rewrite reproduces untouched lines byte for byte.
type Line struct {
	Raw  string
	Kind Kind
	Name string
}

// Text returns the line without surrounding whitespace.
func (l Line) Text() string {
	return strings.TrimSpace(l.Raw)
}

// IsBlank reports whether the line holds only whitespace.
func (l Line) IsBlank() bool {
	return l.Text() == ""
}

/*
Entry is the addressable unit for listing and deletion: a single alias line
or a function block. Start and End are 0-based, inclusive line indices.
Unterminated is set for a function block that has no closing-brace line
before end of file; End then equals Start.
*/
type Entry struct {
	Name         string
	Kind         Kind
	Start        int
	End          int
	Unterminated bool
}

// Contains reports whether line index i falls inside the entry.
func (e Entry) Contains(i int) bool {
	return i >= e.Start && i <= e.End
}

// Document is a parsed alias file.
type Document struct {
	Path    string
	Lines   []Line
	Entries []Entry
}

// IsEmpty reports whether the document has no non-blank line.
func (d Document) IsEmpty() bool {
	for _, l := range d.Lines {
		if !l.IsBlank() {
			return false
		}
	}
	return true
}

// Content joins the raw lines back into file content.
func (d Document) Content() string {
	var b strings.Builder
	for _, l := range d.Lines {
		b.WriteString(l.Raw)
	}
	return b.String()
}

/*
Definition is a new entry to append: a name and the command it runs.
It is always written as a function block.
*/
type Definition struct {
	Name    string
	Command string
}

// FunctionBlock renders the definition as NAME() {\n  COMMAND\n}.
func (d Definition) FunctionBlock() string {
	return fmt.Sprintf("%s() {\n  %s\n}", d.Name, d.Command)
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// IsValidName reports whether name can be addressed as an entry name.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}
