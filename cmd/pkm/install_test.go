package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallUnknownType(t *testing.T) {
	path := writeManifest(t, "mac:\n  brew:\n    - jq\n")

	_, err := runCLI(t, "install", "apt", "ripgrep", "-m", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown package type "apt"`)
	assert.Contains(t, err.Error(), "custom")
}

func TestInstallCustomWithoutSpec(t *testing.T) {
	path := writeManifest(t, "custom: []\n")
	t.Setenv("PKM_SPECS", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := runCLI(t, "install", "custom", "ghost", "-m", path, "-n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no spec found for custom package "ghost"`)
}

func TestInstallCustomDryRunEchoesScript(t *testing.T) {
	path := writeManifest(t, "custom: []\n")
	specs := filepath.Join(filepath.Dir(path), "specs.yaml")
	content := "hello:\n  install: |\n    echo one\n    echo two\n  depends:\n    - git\n"
	require.NoError(t, os.WriteFile(specs, []byte(content), 0o644))
	t.Setenv("PKM_SPECS", specs)

	out, err := runCLI(t, "install", "custom", "hello", "-m", path, "-n")
	require.NoError(t, err)
	assert.Contains(t, out, "Installing")
	assert.Contains(t, out, "Depends: git")
	assert.Contains(t, out, "would run in")
	assert.Contains(t, out, "echo one")

	// Dry runs never touch the manifest.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "custom: []\n", string(data))
}

func TestInstallCustomRespectsPlatformRestriction(t *testing.T) {
	path := writeManifest(t, "custom:\n  - name: hello\n    platforms: [solaris]\n")
	specs := filepath.Join(filepath.Dir(path), "specs.yaml")
	require.NoError(t, os.WriteFile(specs, []byte("hello: echo hi\n"), 0o644))
	t.Setenv("PKM_SPECS", specs)

	_, err := runCLI(t, "install", "custom", "hello", "-m", path, "-n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported on this platform")
}
