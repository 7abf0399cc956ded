package aliasfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultAliasFileFinder(t *testing.T) {
	finder := NewDefaultAliasFileFinder("")
	f, ok := finder.(*DefaultAliasFileFinder)
	if !ok {
		t.Fatalf("NewDefaultAliasFileFinder() did not return a *DefaultAliasFileFinder, got %T", finder)
	}
	if f.markerDir != termuxMarkerDir || f.markerFile != termuxAliasFile {
		t.Errorf("unexpected Termux defaults: %q %q", f.markerDir, f.markerFile)
	}
}

func TestDefaultAliasFileFinder_Find(t *testing.T) {
	home := t.TempDir()
	marker := filepath.Join(t.TempDir(), "com.termux")
	homeFn := func() (string, error) { return home, nil }

	tests := []struct {
		name       string
		finder     *DefaultAliasFileFinder
		makeMarker bool
		want       string
		wantErr    bool
	}{
		{
			name:   "default home path",
			finder: &DefaultAliasFileFinder{goos: "linux", markerDir: marker, markerFile: "/termux/.bash_aliases", homeDir: homeFn},
			want:   filepath.Join(home, ".bash_aliases"),
		},
		{
			name:       "termux marker present",
			finder:     &DefaultAliasFileFinder{goos: "linux", markerDir: marker, markerFile: "/termux/.bash_aliases", homeDir: homeFn},
			makeMarker: true,
			want:       "/termux/.bash_aliases",
		},
		{
			name:       "marker ignored off linux",
			finder:     &DefaultAliasFileFinder{goos: "darwin", markerDir: marker, markerFile: "/termux/.bash_aliases", homeDir: homeFn},
			makeMarker: true,
			want:       filepath.Join(home, ".bash_aliases"),
		},
		{
			name:       "override wins",
			finder:     &DefaultAliasFileFinder{override: "/etc/aliases.sh", goos: "linux", markerDir: marker, markerFile: "/termux/.bash_aliases", homeDir: homeFn},
			makeMarker: true,
			want:       "/etc/aliases.sh",
		},
		{
			name:   "override with tilde",
			finder: &DefaultAliasFileFinder{override: "~/dotfiles/aliases", goos: "linux", markerDir: marker, homeDir: homeFn},
			want:   filepath.Join(home, "dotfiles", "aliases"),
		},
		{
			name:    "home lookup fails",
			finder:  &DefaultAliasFileFinder{goos: "linux", markerDir: marker, homeDir: func() (string, error) { return "", errors.New("no home") }},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.RemoveAll(marker)
			if tt.makeMarker {
				if err := os.MkdirAll(marker, 0755); err != nil {
					t.Fatal(err)
				}
			}
			got, err := tt.finder.Find()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Find() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Find() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultAliasFileFinder_ReevaluatesEachCall(t *testing.T) {
	home := t.TempDir()
	marker := filepath.Join(t.TempDir(), "com.termux")
	f := &DefaultAliasFileFinder{goos: "linux", markerDir: marker, markerFile: "/termux/.bash_aliases", homeDir: func() (string, error) { return home, nil }}

	first, _ := f.Find()
	if err := os.MkdirAll(marker, 0755); err != nil {
		t.Fatal(err)
	}
	second, _ := f.Find()
	if first == second {
		t.Errorf("Find() should notice the marker directory appearing, got %q twice", first)
	}
}
