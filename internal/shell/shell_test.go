package shell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFakeShell(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake shell: %v", err)
	}
	return path
}

func TestDetectPrefersShellEnv(t *testing.T) {
	fake := writeFakeShell(t, "zsh")
	d := &Detector{
		Getenv: func(key string) string {
			if key == "SHELL" {
				return fake
			}
			return ""
		},
		Stat:          os.Stat,
		LookPath:      func(string) (string, error) { return "", errors.New("unused") },
		ParentCommand: func() string { return "" },
	}
	if got := d.Detect(); got != fake {
		t.Fatalf("Detect() = %q, want %q", got, fake)
	}
}

func TestDetectParentProcessShell(t *testing.T) {
	fake := writeFakeShell(t, "fish")
	d := &Detector{
		Getenv:        func(string) string { return "" },
		Stat:          os.Stat,
		LookPath:      func(string) (string, error) { return fake, nil },
		ParentCommand: func() string { return "fish" },
	}
	if got := d.Detect(); got != fake {
		t.Fatalf("Detect() = %q, want %q", got, fake)
	}
}

func TestDetectRejectsUnknownParent(t *testing.T) {
	fake := writeFakeShell(t, "some-daemon")
	d := &Detector{
		Getenv:        func(string) string { return "" },
		Stat:          func(path string) (os.FileInfo, error) { return os.Stat(path) },
		LookPath:      func(string) (string, error) { return fake, nil },
		ParentCommand: func() string { return "some-daemon" },
	}
	got := d.Detect()
	if got == fake {
		t.Fatalf("unknown parent command must not be used as shell")
	}
}

func TestEditor(t *testing.T) {
	noEnv := func(string) string { return "" }
	if got := Editor("code", noEnv); got != "code" {
		t.Fatalf("override should win, got %q", got)
	}
	withEnv := func(key string) string {
		if key == "EDITOR" {
			return "nano"
		}
		return ""
	}
	if got := Editor("", withEnv); got != "nano" {
		t.Fatalf("$EDITOR should win, got %q", got)
	}
	if got := Editor("", noEnv); got != "vim" {
		t.Fatalf("fallback should be vim, got %q", got)
	}
}
