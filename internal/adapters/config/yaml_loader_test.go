package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ghostescript/alias/internal/core/ports"
)

func TestNewYAMLLoader(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	loader, err := NewYAMLLoader("")
	if err != nil {
		t.Fatalf("NewYAMLLoader() unexpected error = %v", err)
	}
	if _, ok := loader.(*YAMLLoader); !ok {
		t.Errorf("NewYAMLLoader() did not return a *YAMLLoader, got %T", loader)
	}
	if want := filepath.Join("/xdg", "aliasmgr", "config.yaml"); loader.Path() != want {
		t.Errorf("Path() = %q, want %q", loader.Path(), want)
	}

	explicit, _ := NewYAMLLoader("/tmp/custom.yaml")
	if explicit.Path() != "/tmp/custom.yaml" {
		t.Errorf("Path() = %q, want explicit path", explicit.Path())
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	colorOff := false

	tests := []struct {
		name                string
		content             *string
		want                ports.Config
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "missing file", content: nil, want: ports.Config{}},
		{name: "empty file", content: strPtr(""), want: ports.Config{}},
		{name: "comments only", content: strPtr("# nothing here\n"), want: ports.Config{}},
		{
			name:    "all fields",
			content: strPtr("alias_file: ~/dotfiles/aliases\ncolor: false\nlog_level: debug\nhistory_limit: 50\n"),
			want:    ports.Config{AliasFile: "~/dotfiles/aliases", Color: &colorOff, LogLevel: "debug", HistoryLimit: 50},
		},
		{
			name:                "unknown field",
			content:             strPtr("alias_path: /x\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to parse config file",
		},
		{
			name:                "negative history limit",
			content:             strPtr("history_limit: -1\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "invalid history_limit",
		},
		{
			name:                "not a mapping",
			content:             strPtr("- a\n- b\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			loader, _ := NewYAMLLoader(path)
			got, err := loader.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("Load() error = %q, want snippet %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
