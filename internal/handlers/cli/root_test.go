package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghostescript/alias/internal/adapters/config"
	"github.com/ghostescript/alias/internal/core/ports"
	"github.com/ghostescript/alias/internal/core/testutil"
	"github.com/ghostescript/alias/internal/handlers/ui"
	"github.com/ghostescript/alias/internal/repositories/aliasfile"
)

type commandResult struct {
	out      string
	err      error
	prompter *testutil.ScriptedPrompter
}

// executeRoot runs the root command against aliasFile with a config file in a temp dir.
func executeRoot(t *testing.T, aliasFile, configYAML string, answers []testutil.ScriptedAnswer, args ...string) commandResult {
	t.Helper()
	ui.SetColorEnabled(false)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if configYAML != "" {
		if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
			t.Fatal(err)
		}
	}

	prompter := &testutil.ScriptedPrompter{Answers: answers}
	cmd := NewRootCommand("test", Dependencies{
		Files:           aliasfile.NewAccessor(),
		NewFinder:       aliasfile.NewDefaultAliasFileFinder,
		NewConfigLoader: config.NewYAMLLoader,
		NewPrompter:     func(int) (ports.Prompter, error) { return prompter, nil },
		LogOutput:       io.Discard,
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--file", aliasFile, "--config", configPath}, args...))
	err := cmd.Execute()
	return commandResult{out: out.String(), err: err, prompter: prompter}
}

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".bash_aliases")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand_Interactive(t *testing.T) {
	path := writeAliasFile(t, scenarioFile)
	res := executeRoot(t, path, "", testutil.Answers("3"))
	if res.err != nil {
		t.Fatalf("Execute() unexpected error = %v", res.err)
	}
	if !strings.Contains(res.out, "Exiting alias v2.0 Menu") {
		t.Errorf("unexpected output:\n%s", res.out)
	}
	if !strings.Contains(res.out, "source "+path) {
		t.Errorf("help should mention the configured alias file:\n%s", res.out)
	}
	if !res.prompter.Closed {
		t.Error("prompter was not closed")
	}
}

func TestRootCommand_Names(t *testing.T) {
	res := executeRoot(t, writeAliasFile(t, scenarioFile), "", nil, "names")
	if res.err != nil {
		t.Fatalf("Execute() unexpected error = %v", res.err)
	}
	if res.out != "deploy\ngc\ngs\n" {
		t.Errorf("names output = %q", res.out)
	}
}

func TestRootCommand_List(t *testing.T) {
	path := writeAliasFile(t, scenarioFile)

	t.Run("table", func(t *testing.T) {
		res := executeRoot(t, path, "", nil, "list")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		for _, want := range []string{"KIND", "function", "deploy", "alias gc=git commit"} {
			if !strings.Contains(res.out, want) {
				t.Errorf("table missing %q:\n%s", want, res.out)
			}
		}
	})

	t.Run("plain", func(t *testing.T) {
		res := executeRoot(t, path, "", nil, "list", "--plain")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		want := "1: alias gs=git status\n2: alias gc=git commit\n3: deploy() {\n4: ./deploy.sh\n5: }\n"
		if res.out != want {
			t.Errorf("plain output = %q, want %q", res.out, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		res := executeRoot(t, filepath.Join(t.TempDir(), "none"), "", nil, "list")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		if !strings.Contains(res.out, "No aliases or functions found") {
			t.Errorf("unexpected output:\n%s", res.out)
		}
	})
}

func TestRootCommand_Add(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "argv joined", args: []string{"add", "ll", "--", "ls", "-la"}, want: "\nll() {\n  ls -la\n}\n"},
		{name: "quoted argv", args: []string{"add", "greet", "--", "echo", "hello world"}, want: "\ngreet() {\n  echo 'hello world'\n}\n"},
		{name: "single command verbatim", args: []string{"add", "gs", "git status | less"}, want: "\ngs() {\n  git status | less\n}\n"},
		{name: "invalid name", args: []string{"add", "my-ls", "ls"}, wantErr: true},
		{name: "missing command", args: []string{"add", "ll"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".bash_aliases")
			res := executeRoot(t, path, "", nil, tt.args...)
			if (res.err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", res.err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := fileContent(t, path); got != tt.want {
				t.Errorf("file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootCommand_Delete(t *testing.T) {
	t.Run("with --yes", func(t *testing.T) {
		path := writeAliasFile(t, scenarioFile)
		res := executeRoot(t, path, "", nil, "delete", "--yes", "deploy")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		if got := fileContent(t, path); got != "alias gs=git status\nalias gc=git commit\n\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("confirmed by prompt", func(t *testing.T) {
		path := writeAliasFile(t, scenarioFile)
		res := executeRoot(t, path, "", testutil.Answers(""), "delete", "gs", "gc")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		if got := fileContent(t, path); got != "\ndeploy() {\n  ./deploy.sh\n}\n" {
			t.Errorf("file = %q", got)
		}
	})

	t.Run("declined by prompt", func(t *testing.T) {
		path := writeAliasFile(t, scenarioFile)
		res := executeRoot(t, path, "", testutil.Answers("n"), "delete", "gs")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		if got := fileContent(t, path); got != scenarioFile {
			t.Errorf("file changed: %q", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		path := writeAliasFile(t, scenarioFile)
		res := executeRoot(t, path, "", nil, "delete", "--yes", "nope")
		if !errors.Is(res.err, ErrNothingToDelete) {
			t.Fatalf("Execute() error = %v, want %v", res.err, ErrNothingToDelete)
		}
		if got := fileContent(t, path); got != scenarioFile {
			t.Errorf("file changed: %q", got)
		}
	})
}

func TestRootCommand_Config(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		res := executeRoot(t, writeAliasFile(t, ""), "log_level: loud\n", nil, "names")
		if res.err == nil || !strings.Contains(res.err.Error(), "invalid log_level") {
			t.Errorf("Execute() error = %v, want invalid log_level", res.err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		res := executeRoot(t, writeAliasFile(t, ""), "colour: false\n", nil, "names")
		if res.err == nil {
			t.Error("Execute() should reject unknown config keys")
		}
	})

	t.Run("flag overrides alias_file", func(t *testing.T) {
		flagFile := writeAliasFile(t, "alias fromflag=1\n")
		configFile := writeAliasFile(t, "alias fromconfig=1\n")
		res := executeRoot(t, flagFile, "alias_file: "+configFile+"\n", nil, "names")
		if res.err != nil {
			t.Fatalf("Execute() unexpected error = %v", res.err)
		}
		if res.out != "fromflag\n" {
			t.Errorf("names output = %q, want the flag's file", res.out)
		}
	})
}
