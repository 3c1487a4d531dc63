package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/pkm/internal/messages"
)

// EnvManifestPath overrides the manifest location when set.
const EnvManifestPath = "PKM_MANIFEST"

// defaultRelPath is the manifest location under the home directory.
var defaultRelPath = filepath.Join(".config", "packages.yaml")

// DefaultPath returns ~/.config/packages.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ManifestResolveHomeFmt, err)
	}
	return filepath.Join(home, defaultRelPath), nil
}

// File is a manifest bound to its on-disk location. The bytes read at load
// time are kept so saves can diff and skip no-op writes.
type File struct {
	Path     string
	Doc      *Document
	original []byte
}

// Load reads and parses the manifest at path. The file must exist; a
// missing manifest is a configuration error, not an empty document.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(messages.ManifestMissingFileFmt, path)
		}
		return nil, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestParseFmt, path, err)
	}
	return &File{Path: path, Doc: doc, original: data}, nil
}
