package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected Config
	}{
		{
			name:     "Empty File Keeps Defaults",
			content:  "",
			expected: *Default(),
		},
		{
			name:    "Partial Override",
			content: "prompt: \"collage> \"\nverbose: true\n",
			expected: Config{
				Prompt:      "collage> ",
				HistoryFile: "~/.collage_history",
				Color:       true,
				Verbose:     true,
			},
		},
		{
			name: "Every Key",
			content: `prompt: "$ "
history_file: ""
color: false
verbose: true
show_tokens: true
show_tree: true
`,
			expected: Config{
				Prompt:     "$ ",
				Verbose:    true,
				ShowTokens: true,
				ShowTree:   true,
			},
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.Repeat("c", i+1)+".yml", tt.content)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			cfg.Path = ""
			if !reflect.DeepEqual(*cfg, tt.expected) {
				t.Errorf("Load mismatch\nGot:      %+v\nExpected: %+v", *cfg, tt.expected)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"Unknown Key", "promt: \"> \"\n", "field promt not found"},
		{"Wrong Type", "color: maybe\n", "config: parse"},
		{"Empty Prompt", "prompt: \"\"\n", "prompt must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad.yml", tt.content)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvVar, "")

	// Nothing on disk: defaults.
	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// ~/.collage.yml is picked up.
	writeFile(t, home, ".collage.yml", "prompt: \"home> \"\n")
	if cfg, err = Resolve(""); err != nil || cfg.Prompt != "home> " {
		t.Errorf("home config not used: %+v, %v", cfg, err)
	}

	// $COLLAGE_CONFIG wins over the home file.
	env := writeFile(t, home, "env.yml", "prompt: \"env> \"\n")
	t.Setenv(EnvVar, env)
	if cfg, err = Resolve(""); err != nil || cfg.Prompt != "env> " {
		t.Errorf("env config not used: %+v, %v", cfg, err)
	}

	// An explicit path wins over both.
	explicit := writeFile(t, home, "explicit.yml", "prompt: \"cli> \"\n")
	if cfg, err = Resolve(explicit); err != nil || cfg.Prompt != "cli> " {
		t.Errorf("explicit config not used: %+v, %v", cfg, err)
	}

	// A missing explicit or env file is an error.
	if _, err := Resolve(filepath.Join(home, "missing.yml")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for explicit path, got %v", err)
	}
	t.Setenv(EnvVar, filepath.Join(home, "missing.yml"))
	if _, err := Resolve(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for $%s, got %v", EnvVar, err)
	}
}

func TestHistoryPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if got, want := cfg.HistoryPath(), filepath.Join(home, ".collage_history"); got != want {
		t.Errorf("HistoryPath() = %q, want %q", got, want)
	}
	cfg.HistoryFile = ""
	if got := cfg.HistoryPath(); got != "" {
		t.Errorf("HistoryPath() = %q, want disabled", got)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	cfg := Default()
	cfg.Prompt = "rt> "
	cfg.ShowTree = true

	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got.Path = ""
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch\nGot:      %+v\nExpected: %+v", got, cfg)
	}
}
