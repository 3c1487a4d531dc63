package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "specs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	catalog, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestLoadShorthandAndFullForms(t *testing.T) {
	path := writeSpecs(t, `
oh-my-zsh: sh -c "$(curl -fsSL https://ohmyz.sh/install.sh)"
tpm:
  install: git clone https://github.com/tmux-plugins/tpm ~/.tmux/plugins/tpm
  check: test -d ~/.tmux/plugins/tpm
  remove: rm -rf ~/.tmux/plugins/tpm
  shell: /bin/bash
  depends: [brew:tmux]
  description: tmux plugin manager
`)
	catalog, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	short, found := catalog.Lookup("oh-my-zsh")
	require.True(t, found)
	assert.Equal(t, "oh-my-zsh", short.Name)
	assert.Contains(t, short.Install, "ohmyz.sh")
	assert.Empty(t, short.Check)

	full, found := catalog.Lookup("tpm")
	require.True(t, found)
	assert.Equal(t, "test -d ~/.tmux/plugins/tpm", full.Check)
	assert.Equal(t, "rm -rf ~/.tmux/plugins/tpm", full.Remove)
	assert.Equal(t, "/bin/bash", full.Shell)
	assert.Equal(t, []string{"brew:tmux"}, full.Depends)
	assert.Equal(t, "tmux plugin manager", full.Description)

	assert.Equal(t, []string{"oh-my-zsh", "tpm"}, catalog.Names())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeSpecs(t, "tool: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPathFor(t *testing.T) {
	noEnv := func(string) string { return "" }
	got := PathFor("/home/u/.config/packages.yaml", noEnv)
	assert.Equal(t, filepath.Join("/home/u/.config", "specs.yaml"), got)

	withEnv := func(key string) string {
		if key == EnvSpecsPath {
			return "/tmp/custom-specs.yaml"
		}
		return ""
	}
	assert.Equal(t, "/tmp/custom-specs.yaml", PathFor("/anywhere/packages.yaml", withEnv))
}
