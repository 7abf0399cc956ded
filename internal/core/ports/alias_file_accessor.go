package ports

import "github.com/ghostescript/alias/internal/core/domain/alias"

/*
AliasFileAccessor defines the interface for reading from and writing to the
alias file. This is a driven port, implemented by a repository adapter that
understands the alias/function-block format.
*/
type AliasFileAccessor interface {
	/*
	   Load reads and parses the alias file at path. A missing file is not an
	   error; it yields a Document with no lines.
	*/
	Load(path string) (alias.Document, error)

	/*
	   Append writes def as a function block at the end of the file at path,
	   preceded by a blank line. The file is created if it does not exist.
	*/
	Append(path string, def alias.Definition) error

	// Rewrite replaces the whole content of the file at path with lines.
	Rewrite(path string, lines []string) error
}
