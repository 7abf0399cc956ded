package alias

import "sort"

// ListedLine is a non-blank line of the alias file with its 1-based display index.
// Name and Kind are set for alias and function-declaration lines only.
type ListedLine struct {
	Index        int
	Text         string
	Kind         Kind
	Name         string
	Unterminated bool
}

// Listing is the displayable view of an alias file.
type Listing struct {
	Path  string
	Lines []ListedLine
}

// DeletionPlan describes which entries a delete request would remove.
// Nothing touches the file until the plan is committed.
type DeletionPlan struct {
	Path      string
	Requested []string
	Marked    []Entry
	NotFound  []string
	Malformed []string
	Source    Document
}

// Found returns the sorted names of the marked entries.
func (p DeletionPlan) Found() []string {
	names := make([]string, 0, len(p.Marked))
	seen := make(map[string]bool, len(p.Marked))
	for _, e := range p.Marked {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}

// HasWork reports whether committing the plan would change the file.
func (p DeletionPlan) HasWork() bool {
	return len(p.Marked) > 0
}

// Remaining returns the raw lines that survive the deletion, in file order.
func (p DeletionPlan) Remaining() []string {
	kept := make([]string, 0, len(p.Source.Lines))
	for i, l := range p.Source.Lines {
		if p.marks(i) {
			continue
		}
		kept = append(kept, l.Raw)
	}
	return kept
}

// MarkedLines returns the trimmed text of every line that would be removed.
func (p DeletionPlan) MarkedLines() []string {
	var out []string
	for i, l := range p.Source.Lines {
		if p.marks(i) {
			out = append(out, l.Text())
		}
	}
	return out
}

func (p DeletionPlan) marks(i int) bool {
	for _, e := range p.Marked {
		if e.Contains(i) {
			return true
		}
	}
	return false
}
