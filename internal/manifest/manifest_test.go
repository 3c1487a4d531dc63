package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/platform"
)

const sampleManifest = `mac:
  brew:
    - ripgrep
    - tmux
  cask:
    - raycast
general:
  conda:
    - python
    - tmux:brew
  python:
    - name: httpie
      platforms: [linux]
custom:
  - fisher
  - name: tpm
    platforms: darwin
`

func activeCategories(keys ...string) []backend.Category {
	all := map[string]backend.Category{
		"mac":     {Key: "mac", Title: "macOS", Gate: platform.TagDarwin, Members: []string{"brew", "cask", "mas"}},
		"wsl":     {Key: "wsl", Title: "WSL", Gate: platform.TagWSL, Members: []string{"winget"}},
		"general": {Key: "general", Title: "General", Members: []string{"conda", "python", "rust", "bun"}},
		"custom":  {Key: "custom", Title: "Custom", Members: []string{"custom"}},
	}
	cats := make([]backend.Category, 0, len(keys))
	for _, key := range keys {
		cats = append(cats, all[key])
	}
	return cats
}

func darwinClassifier() *platform.Classifier {
	return platform.NewForTest("darwin", func(string) string { return "" }, nil)
}

func linuxClassifier() *platform.Classifier {
	return platform.NewForTest("linux",
		func(string) string { return "" },
		func(string) ([]byte, error) { return []byte("Linux version 6.8 generic"), nil },
	)
}

func TestParseEmptyAndNull(t *testing.T) {
	for _, content := range []string{"", "\n", "null\n", "# just a comment\n"} {
		doc, err := Parse([]byte(content))
		require.NoError(t, err, "content %q", content)
		data, err := doc.Marshal()
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}

func TestParseRejectsNonMapping(t *testing.T) {
	_, err := Parse([]byte("- just\n- a list\n"))
	assert.Error(t, err)
}

func TestFlattenOnDarwin(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	flat, err := doc.Flatten(activeCategories("mac", "general", "custom"), darwinClassifier())
	require.NoError(t, err)

	assert.Equal(t, []string{"brew", "cask", "conda", "custom"}, flat.Backends())

	conda := flat.Section("conda")
	require.Len(t, conda, 2)
	assert.Equal(t, Entry{Raw: "python", Name: "python"}, conda[0])
	// The override suffix survives flattening; resolution happens later.
	assert.Equal(t, "tmux:brew", conda[1].Raw)
	assert.Equal(t, "tmux", conda[1].Name)
	assert.Equal(t, "brew", conda[1].Override)

	// httpie is linux-only, so the python section vanishes entirely.
	assert.Nil(t, flat.Section("python"))

	custom := flat.Section("custom")
	require.Len(t, custom, 2)
	assert.Equal(t, "fisher", custom[0].Name)
	assert.Equal(t, "tpm", custom[1].Name)
	assert.Equal(t, []string{"darwin"}, custom[1].Platforms)
}

func TestFlattenOnLinuxDropsInactiveAndRestricted(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	flat, err := doc.Flatten(activeCategories("general", "custom"), linuxClassifier())
	require.NoError(t, err)

	assert.Equal(t, []string{"conda", "python", "custom"}, flat.Backends())
	require.Len(t, flat.Section("python"), 1)
	assert.Equal(t, "httpie", flat.Section("python")[0].Name)

	// tpm is darwin-only.
	custom := flat.Section("custom")
	require.Len(t, custom, 1)
	assert.Equal(t, "fisher", custom[0].Name)
}

func TestFlattenDeduplicatesByParsedName(t *testing.T) {
	doc, err := Parse([]byte("general:\n  conda:\n    - tmux\n    - tmux:brew\n    - tmux\n"))
	require.NoError(t, err)

	flat, err := doc.Flatten(activeCategories("general"), linuxClassifier())
	require.NoError(t, err)
	require.Len(t, flat.Section("conda"), 1)
	assert.Equal(t, "tmux", flat.Section("conda")[0].Raw)
}

func TestFlattenRejectsMalformedEntries(t *testing.T) {
	doc, err := Parse([]byte("general:\n  conda:\n    - platforms: [linux]\n"))
	require.NoError(t, err)
	_, err = doc.Flatten(activeCategories("general"), linuxClassifier())
	assert.Error(t, err, "entry mapping without a name")

	doc, err = Parse([]byte("general:\n  conda:\n    - [nested, list]\n"))
	require.NoError(t, err)
	_, err = doc.Flatten(activeCategories("general"), linuxClassifier())
	assert.Error(t, err)
}

// Serialization must reproduce every declared entry, including entries for
// inactive platforms and override-suffixed ones, regardless of where the
// tool currently runs.
func TestRoundTripPreservesAllSections(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	_, err = doc.Flatten(activeCategories("general", "custom"), linuxClassifier())
	require.NoError(t, err)

	data, err := doc.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	flat, err := again.Flatten(activeCategories("mac", "general", "custom"), darwinClassifier())
	require.NoError(t, err)

	assert.Equal(t, []string{"brew", "cask", "conda", "custom"}, flat.Backends())
	assert.Equal(t, "tmux:brew", flat.Section("conda")[1].Raw)
	assert.Contains(t, string(data), "raycast")
	assert.Contains(t, string(data), "tmux:brew")
}

func TestAddCreatesKeysAndSkipsDuplicates(t *testing.T) {
	doc := Empty()

	assert.True(t, doc.Add("general", "rust", "bat"))
	assert.True(t, doc.Add("general", "rust", "fd-find"))
	assert.False(t, doc.Add("general", "rust", "bat"), "duplicate parsed name")
	assert.True(t, doc.Add("mac", "brew", "jq"))

	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "general:\n  rust:\n    - bat\n    - fd-find\nmac:\n  brew:\n    - jq\n", string(data))
}

func TestAddMatchesOverrideSuffixedEntries(t *testing.T) {
	doc, err := Parse([]byte("general:\n  conda:\n    - tmux:brew\n"))
	require.NoError(t, err)
	assert.False(t, doc.Add("general", "conda", "tmux"))
}

func TestRemovePrunesBackendKeyButNotCategory(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.True(t, doc.Remove("mac", "cask", "raycast"))
	assert.False(t, doc.Remove("mac", "cask", "raycast"))

	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "cask")
	assert.Contains(t, string(data), "mac:", "category survives losing one backend")
	assert.Contains(t, string(data), "ripgrep")
}

func TestRemoveMatchesParsedNameIgnoringOverride(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.True(t, doc.Remove("general", "conda", "tmux"))
	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tmux:brew")
	assert.Contains(t, string(data), "python")
}

func TestCustomAddRemove(t *testing.T) {
	doc := Empty()

	assert.True(t, doc.AddCustom("fisher"))
	assert.False(t, doc.AddCustom("fisher"))
	assert.True(t, doc.AddCustom("tpm"))

	assert.True(t, doc.RemoveCustom("fisher"))
	assert.True(t, doc.RemoveCustom("tpm"))
	assert.False(t, doc.RemoveCustom("tpm"))

	data, err := doc.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "custom", "emptied custom key is dropped")
}

func TestDeclaringSection(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	flat, err := doc.Flatten(activeCategories("mac", "general", "custom"), darwinClassifier())
	require.NoError(t, err)

	section, found := flat.DeclaringSection("tmux")
	require.True(t, found)
	assert.Equal(t, "conda", section, "declaring section, not the override target")

	section, found = flat.DeclaringSection("fisher")
	require.True(t, found)
	assert.Equal(t, CustomKey, section)

	_, found = flat.DeclaringSection("nonexistent")
	assert.False(t, found)
}

func TestLoadMissingManifestIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "packages.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveSkipsUnchangedAndWritesDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	file, err := Load(path)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, file.Save(&out))
	assert.Empty(t, out.String(), "no change, no diff, no write")

	require.True(t, file.Doc.Add("general", "rust", "bat"))
	changed, err := file.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, file.Save(&out))
	assert.Contains(t, out.String(), "+    - bat")

	reloaded, err := Load(path)
	require.NoError(t, err)
	flat, err := reloaded.Doc.Flatten(activeCategories("general"), linuxClassifier())
	require.NoError(t, err)
	assert.Equal(t, "bat", flat.Section("rust")[0].Name)

	// Second save after no further edits is a no-op again.
	out.Reset()
	require.NoError(t, file.Save(&out))
	assert.Empty(t, out.String())
}

func TestCustomEntryIgnoresPlatformFilter(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	entry, found := doc.CustomEntry("tpm")
	require.True(t, found)
	assert.Equal(t, []string{"darwin"}, entry.Platforms)

	_, found = doc.CustomEntry("nonexistent")
	assert.False(t, found)
}
