package testutil

import (
	"errors"

	"github.com/ghostescript/alias/internal/core/domain/alias"
	"github.com/ghostescript/alias/internal/core/ports"
)

// MockAliasFileAccessor is a mock implementation of ports.AliasFileAccessor for testing.
type MockAliasFileAccessor struct {
	LoadFunc    func(path string) (alias.Document, error)
	AppendFunc  func(path string, def alias.Definition) error
	RewriteFunc func(path string, lines []string) error
}

func (m *MockAliasFileAccessor) Load(path string) (alias.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return alias.Document{}, errors.New("MockAliasFileAccessor: LoadFunc not implemented")
}

func (m *MockAliasFileAccessor) Append(path string, def alias.Definition) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(path, def)
	}
	return errors.New("MockAliasFileAccessor: AppendFunc not implemented")
}

func (m *MockAliasFileAccessor) Rewrite(path string, lines []string) error {
	if m.RewriteFunc != nil {
		return m.RewriteFunc(path, lines)
	}
	return errors.New("MockAliasFileAccessor: RewriteFunc not implemented")
}

var _ ports.AliasFileAccessor = (*MockAliasFileAccessor)(nil)
