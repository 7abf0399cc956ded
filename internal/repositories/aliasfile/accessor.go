package aliasfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/core/ports"
)

// Accessor reads and writes the alias file on the local file system.
type Accessor struct{}

// NewAccessor creates a new Accessor.
func NewAccessor() ports.AliasFileAccessor {
	return &Accessor{}
}

// Load implements the ports.AliasFileAccessor interface.
func (a *Accessor) Load(path string) (alias.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return alias.Document{Path: path}, nil // No file yet means no entries.
		}
		return alias.Document{}, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}
	return parseDocument(path, string(content)), nil
}

// Append implements the ports.AliasFileAccessor interface.
func (a *Accessor) Append(path string, def alias.Definition) error {
	dirPath := filepath.Dir(path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	// One blank line separates the block from whatever precedes it.
	prefix := "\n"
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		prefix = "\n\n"
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open alias file %s for appending: %w", path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(prefix + def.FunctionBlock() + "\n"); err != nil {
		return fmt.Errorf("failed to write %q to alias file %s: %w", def.Name, path, err)
	}
	return file.Close()
}

/*
Rewrite implements the ports.AliasFileAccessor interface. The new content is
written to a temporary file next to the target and renamed over it, so a
failed write leaves the old file intact. A symlinked alias file is resolved
first and the link itself is kept.
*/
func (a *Accessor) Rewrite(path string, lines []string) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(strings.Join(lines, "")); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write alias file %s: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temporary file for %s: %w", path, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace alias file %s: %w", path, err)
	}
	return nil
}
