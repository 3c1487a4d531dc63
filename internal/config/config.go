// Package config loads the optional tool settings file
// (~/.config/pkm/config.toml). Settings hold machine-local preferences that
// do not belong in the shared package manifest: the manifest location, a
// shell override, and the editor used by the edit command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pkm/internal/messages"
)

// Settings are the persisted tool preferences. Every field is optional.
type Settings struct {
	// Manifest overrides the default manifest path.
	Manifest string `toml:"manifest"`
	// Shell forces a shell for command execution instead of detection.
	Shell string `toml:"shell"`
	// Editor is used by the edit command before $EDITOR.
	Editor string `toml:"editor"`
}

// DefaultPath returns ~/.config/pkm/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ManifestResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "pkm", "config.toml"), nil
}

// Load reads settings from path. A missing file yields zero-value settings;
// the tool works without any configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf(messages.SettingsReadFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes settings TOML. Unknown keys are rejected so typos
// (e.g. "manifset") fail loudly instead of being silently ignored.
func Parse(data []byte, source string) (*Settings, error) {
	var settings Settings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&settings); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf(messages.SettingsUnknownKeysFmt, source, strict.String())
		}
		return nil, fmt.Errorf(messages.SettingsParseFmt, source, err)
	}
	return &settings, nil
}
