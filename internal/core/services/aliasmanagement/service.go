package aliasmanagement

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/core/ports"
)

// AllNames is the delete request that selects every known name.
const AllNames = "all"

var (
	ErrEmptyName    = errors.New("alias name cannot be empty")
	ErrEmptyCommand = errors.New("command cannot be empty")
	ErrInvalidName  = errors.New("alias name may only contain letters, digits and underscores")
	// ErrFileChanged is returned when the alias file was modified between
	// planning a deletion and committing it.
	ErrFileChanged = errors.New("alias file changed since the deletion was planned")
)

type service struct {
	files  ports.AliasFileAccessor
	finder ports.AliasFileFinder
	logger *log.Logger
}

// NewService creates a new alias management service.
// It panics if files or finder is nil. A nil logger discards log output.
func NewService(files ports.AliasFileAccessor, finder ports.AliasFileFinder, logger *log.Logger) ports.AliasManagementService {
	if files == nil {
		panic("alias file accessor cannot be nil")
	}
	if finder == nil {
		panic("alias file finder cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{files: files, finder: finder, logger: logger}
}

// AliasFilePath resolves the alias file location. It is re-evaluated on every call.
func (s *service) AliasFilePath() (string, error) {
	path, err := s.finder.Find()
	if err != nil {
		return "", fmt.Errorf("failed to locate alias file: %w", err)
	}
	return path, nil
}

func (s *service) load() (alias.Document, error) {
	path, err := s.AliasFilePath()
	if err != nil {
		return alias.Document{}, err
	}
	s.logger.Debug("loading alias file", "path", path)
	doc, err := s.files.Load(path)
	if err != nil {
		return alias.Document{}, err
	}
	for _, e := range doc.Entries {
		if e.Unterminated {
			s.logger.Warn("function block has no closing brace", "name", e.Name, "line", e.Start+1, "path", path)
		}
	}
	return doc, nil
}

// ListNames returns every alias and function name declared on any line, sorted and unique.
func (s *service) ListNames() ([]string, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return namesOf(doc), nil
}

func namesOf(doc alias.Document) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, l := range doc.Lines {
		if l.Kind == alias.KindOther || seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// CreateEntry appends name() { command } to the alias file.
func (s *service) CreateEntry(name, command string) error {
	name = strings.TrimSpace(name)
	command = strings.TrimSpace(command)
	if name == "" {
		return ErrEmptyName
	}
	if command == "" {
		return ErrEmptyCommand
	}
	if !alias.IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	path, err := s.AliasFilePath()
	if err != nil {
		return err
	}
	def := alias.Definition{Name: name, Command: command}
	if err := s.files.Append(path, def); err != nil {
		return fmt.Errorf("failed to add alias '%s': %w", name, err)
	}
	s.logger.Debug("appended function block", "name", name, "path", path)
	return nil
}

// ListEntries numbers every non-blank line of the alias file from 1.
func (s *service) ListEntries() (alias.Listing, error) {
	doc, err := s.load()
	if err != nil {
		return alias.Listing{}, err
	}
	listing := alias.Listing{Path: doc.Path}

	unterminated := make(map[int]bool)
	for _, e := range doc.Entries {
		if e.Unterminated {
			unterminated[e.Start] = true
		}
	}

	index := 0
	for i, l := range doc.Lines {
		if l.IsBlank() {
			continue
		}
		index++
		listing.Lines = append(listing.Lines, alias.ListedLine{
			Index:        index,
			Text:         l.Text(),
			Kind:         l.Kind,
			Name:         l.Name,
			Unterminated: unterminated[i],
		})
	}
	return listing, nil
}

/*
PlanDeletion is the second pass: for each requested name it marks the first
parsed entry carrying that name. Unterminated function blocks are never
marked; their names are reported in Malformed instead.
*/
func (s *service) PlanDeletion(names []string) (alias.DeletionPlan, error) {
	doc, err := s.load()
	if err != nil {
		return alias.DeletionPlan{}, err
	}

	requested := normalizeNames(names)
	if len(requested) == 1 && strings.EqualFold(requested[0], AllNames) {
		requested = namesOf(doc)
	}

	plan := alias.DeletionPlan{
		Path:      doc.Path,
		Requested: requested,
		Source:    doc,
	}
	for _, name := range requested {
		entry, ok := firstEntryNamed(doc, name)
		switch {
		case !ok:
			plan.NotFound = append(plan.NotFound, name)
		case entry.Unterminated:
			plan.Malformed = append(plan.Malformed, name)
		default:
			plan.Marked = append(plan.Marked, entry)
		}
	}
	sort.Slice(plan.Marked, func(i, j int) bool { return plan.Marked[i].Start < plan.Marked[j].Start })
	sort.Strings(plan.NotFound)
	sort.Strings(plan.Malformed)
	return plan, nil
}

func firstEntryNamed(doc alias.Document, name string) (alias.Entry, bool) {
	for _, e := range doc.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return alias.Entry{}, false
}

// normalizeNames trims, drops blanks and removes duplicates while keeping input order.
func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// CommitDeletion rewrites the alias file without the lines marked in plan.
func (s *service) CommitDeletion(plan alias.DeletionPlan) error {
	if !plan.HasWork() {
		return nil
	}
	current, err := s.files.Load(plan.Path)
	if err != nil {
		return err
	}
	if current.Content() != plan.Source.Content() {
		return ErrFileChanged
	}
	if err := s.files.Rewrite(plan.Path, plan.Remaining()); err != nil {
		return fmt.Errorf("failed to delete %s: %w", strings.Join(plan.Found(), ", "), err)
	}
	s.logger.Debug("rewrote alias file", "path", plan.Path, "deleted", plan.Found())
	return nil
}
