package aliasfile

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ghostescript/alias/internal/core/ports"
)

const (
	defaultAliasFilename = ".bash_aliases"
	termuxMarkerDir      = "/data/data/com.termux"
	termuxAliasFile      = "/data/data/com.termux/files/home/.bash_aliases"
)

/*
DefaultAliasFileFinder resolves ~/.bash_aliases, or the Termux home copy when
running inside Termux on Android. An explicit override (from a flag or the
config file) wins over both. The environment is checked on every Find call.
*/
type DefaultAliasFileFinder struct {
	override   string
	goos       string
	markerDir  string
	markerFile string
	homeDir    func() (string, error)
}

// NewDefaultAliasFileFinder creates a finder. override may be empty.
func NewDefaultAliasFileFinder(override string) ports.AliasFileFinder {
	return &DefaultAliasFileFinder{
		override:   override,
		goos:       runtime.GOOS,
		markerDir:  termuxMarkerDir,
		markerFile: termuxAliasFile,
		homeDir:    currentHomeDir,
	}
}

// Find implements the ports.AliasFileFinder interface.
func (f *DefaultAliasFileFinder) Find() (string, error) {
	if f.override != "" {
		return f.expandHome(f.override)
	}
	if f.goos == "linux" && dirExists(f.markerDir) {
		return f.markerFile, nil
	}
	home, err := f.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultAliasFilename), nil
}

func (f *DefaultAliasFileFinder) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := f.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func currentHomeDir() (string, error) {
	usr, err := user.Current()
	if err == nil && usr.HomeDir != "" {
		return usr.HomeDir, nil
	}
	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", homeErr)
	}
	return home, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
