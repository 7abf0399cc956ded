package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ghostescript/alias/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "aliasmgr"
	configFileName = "config.yaml"
)

// YAMLLoader implements the ConfigLoader interface by reading settings from a YAML file.
type YAMLLoader struct {
	filePath string
}

// NewYAMLLoader creates a new YAMLLoader.
// An empty filePath selects the default location, see DefaultPath.
func NewYAMLLoader(filePath string) (ports.ConfigLoader, error) {
	if filePath == "" {
		def, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		filePath = def
	}
	return &YAMLLoader{filePath: filePath}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/aliasmgr/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, configDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(home, ".config", configDirName, configFileName), nil
}

// Path returns the file the loader reads.
func (l *YAMLLoader) Path() string {
	return l.filePath
}

// Load reads and parses the configuration file.
// A missing or empty file yields the zero Config and no error.
func (l *YAMLLoader) Load() (ports.Config, error) {
	var cfg ports.Config

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", l.filePath, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		// A file holding only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return ports.Config{}, nil
		}
		return ports.Config{}, fmt.Errorf("failed to parse config file %s: %w", l.filePath, err)
	}
	if cfg.HistoryLimit < 0 {
		return ports.Config{}, fmt.Errorf("invalid history_limit %d in %s: must not be negative", cfg.HistoryLimit, l.filePath)
	}
	return cfg, nil
}
