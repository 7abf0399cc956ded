package testutil

import "github.com/ghostescript/alias/internal/core/ports"

// MockAliasFileFinder is a mock implementation of ports.AliasFileFinder.
type MockAliasFileFinder struct {
	FindFunc func() (string, error)
}

// Find mocks the Find method.
func (m *MockAliasFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "/home/test/.bash_aliases", nil // Default behavior
}

var _ ports.AliasFileFinder = (*MockAliasFileFinder)(nil)
