package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pkm/internal/messages"
)

// Entry is one declared package after decoding its manifest encoding.
// Raw keeps the literal string form (override suffix included) so removal
// and round-tripping can match what the user wrote. Name and Override come
// from splitting "name:backend" once at parse time; entries without a colon
// carry an empty Override.
type Entry struct {
	Raw       string
	Name      string
	Override  string
	Platforms []string
}

// splitEntryName splits the fallback syntax "name:backend".
func splitEntryName(raw string) (name, override string) {
	if before, after, found := strings.Cut(raw, ":"); found {
		return before, after
	}
	return raw, ""
}

// decodeEntry reads one sequence element: either a plain string or a
// mapping with a name and an optional platform restriction. section names
// the enclosing list for error messages.
func decodeEntry(node *yaml.Node, section string) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return Entry{}, fmt.Errorf(messages.ManifestEntryKindFmt, section)
		}
		name, override := splitEntryName(raw)
		return Entry{Raw: raw, Name: name, Override: override}, nil
	case yaml.MappingNode:
		var structured struct {
			Name      string    `yaml:"name"`
			Platforms yaml.Node `yaml:"platforms"`
			Platform  yaml.Node `yaml:"platform"`
		}
		if err := node.Decode(&structured); err != nil {
			return Entry{}, fmt.Errorf(messages.ManifestEntryKindFmt, section)
		}
		if structured.Name == "" {
			return Entry{}, fmt.Errorf(messages.ManifestEntryNameFmt, section)
		}
		platforms, err := decodePlatforms(&structured.Platforms)
		if err != nil {
			return Entry{}, fmt.Errorf(messages.ManifestEntryKindFmt, section)
		}
		if platforms == nil {
			if platforms, err = decodePlatforms(&structured.Platform); err != nil {
				return Entry{}, fmt.Errorf(messages.ManifestEntryKindFmt, section)
			}
		}
		name, override := splitEntryName(structured.Name)
		return Entry{Raw: structured.Name, Name: name, Override: override, Platforms: platforms}, nil
	default:
		return Entry{}, fmt.Errorf(messages.ManifestEntryKindFmt, section)
	}
}

// decodePlatforms accepts a single tag or a tag list.
func decodePlatforms(node *yaml.Node) ([]string, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind == yaml.ScalarNode {
		var tag string
		if err := node.Decode(&tag); err != nil {
			return nil, err
		}
		return []string{tag}, nil
	}
	var tags []string
	if err := node.Decode(&tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// decodeEntries reads a backend's (or the custom key's) sequence node.
func decodeEntries(seq *yaml.Node, section string) ([]Entry, error) {
	if seq == nil || seq.Tag == "!!null" {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf(messages.ManifestEntryKindFmt, section)
	}
	entries := make([]Entry, 0, len(seq.Content))
	for _, item := range seq.Content {
		entry, err := decodeEntry(item, section)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
