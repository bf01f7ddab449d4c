package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"collage/pkg/config"
)

// isolate points config resolution at an empty home directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvVar, "")
	return home
}

func TestRun(t *testing.T) {
	home := isolate(t)
	exprFile := filepath.Join(home, "expr.txt")
	if err := os.WriteFile(exprFile, []byte("(20 + 1) *\n5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{name: "Flag Expression", args: []string{"-e", "10 + 1 * 5"}, code: 0, stdout: "15\n"},
		{name: "Positional Expression", args: []string{"1", "-", "2", "-", "3"}, code: 0, stdout: "-4\n"},
		{name: "Input File", args: []string{"-in", exprFile}, code: 0, stdout: "105\n"},
		{name: "String", args: []string{"-e", `"Hi"`}, code: 0, stdout: "Hi\n"},
		{
			name:   "Type Error",
			args:   []string{"-e", "1 || true"},
			code:   1,
			stderr: "Error: Cannot apply logical OR on type \"number\" and \"bool\"\n",
		},
		{
			name:   "Syntax Error",
			args:   []string{"-e", "1 2"},
			code:   1,
			stderr: "Error: Unexpected token NUMBER \"2\" after expression (line 1, column 3)\n",
		},
		{name: "Help", args: []string{"-h"}, code: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			if code != tt.code {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
			if stdout.String() != tt.stdout {
				t.Errorf("stdout mismatch\nGot:      %q\nExpected: %q", stdout.String(), tt.stdout)
			}
			if tt.stderr != "" && stderr.String() != tt.stderr {
				t.Errorf("stderr mismatch\nGot:      %q\nExpected: %q", stderr.String(), tt.stderr)
			}
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"No Input", nil},
		{"Two Inputs", []string{"-e", "1", "2"}},
		{"Unknown Flag", []string{"-frob"}},
		{"Missing Config", []string{"-config", "/nonexistent/collage.yml", "-e", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout: %q", stdout.String())
			}
		})
	}
}

func TestRunMissingInputFile(t *testing.T) {
	home := isolate(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-in", filepath.Join(home, "nope.txt")}, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "failed to read input file") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunVerbose(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", "-e", "2 > 1"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d: %s", code, stderr.String())
	}
	if stdout.String() != "true\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	for _, want := range []string{"collage: lex: 3 tokens", "collage: bind: GreaterThan(2, 1) : bool", "collage: eval: bool true"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr.String())
		}
	}
}

func TestRunConfigVerbose(t *testing.T) {
	home := isolate(t)
	if err := os.WriteFile(filepath.Join(home, ".collage.yml"), []byte("verbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-e", "1"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "collage: lex: 1 tokens") {
		t.Errorf("config verbose not applied: %q", stderr.String())
	}
}

func TestRunInitConfig(t *testing.T) {
	home := isolate(t)
	out := filepath.Join(home, "written.yml")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-init-config", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d: %s", code, stderr.String())
	}
	cfg, err := config.Load(out)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Prompt != config.Default().Prompt {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
}
