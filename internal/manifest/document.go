// Package manifest models the declarative package manifest: a YAML mapping
// from category to backend lists plus a top-level custom list. The document
// is kept as a YAML node tree so saves preserve key order, entry encodings,
// and sections for platforms other than the current one.
package manifest

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pkm/internal/messages"
)

// CustomKey is the top-level key holding script-based packages.
const CustomKey = "custom"

// Document wraps the parsed manifest node tree. The zero value is unusable;
// use Parse or Empty.
type Document struct {
	root *yaml.Node
}

// Empty returns a document with no declarations.
func Empty() *Document {
	return &Document{root: newMapping()}
}

// Parse decodes manifest bytes. Empty or null content yields an empty
// document; any other non-mapping top level is rejected.
func Parse(data []byte) (*Document, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return Empty(), nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return Empty(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(messages.ManifestTopLevelKind)
	}
	return &Document{root: root}, nil
}

// Marshal serializes the full document, inactive sections included.
func (d *Document) Marshal() ([]byte, error) {
	if len(d.root.Content) == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf(messages.ManifestEncodeFmt, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf(messages.ManifestEncodeFmt, err)
	}
	return buf.Bytes(), nil
}

// mappingValue returns the value node for key within a mapping, or nil.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// mappingEnsure returns the value node for key, appending a new one built by
// make when the key is absent.
func mappingEnsure(mapping *yaml.Node, key string, make func() *yaml.Node) *yaml.Node {
	if value := mappingValue(mapping, key); value != nil {
		return value
	}
	value := make()
	mapping.Content = append(mapping.Content, newScalar(key), value)
	return value
}

// mappingDelete removes key (and its value) from a mapping.
func mappingDelete(mapping *yaml.Node, key string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content = append(mapping.Content[:i], mapping.Content[i+2:]...)
			return
		}
	}
}

func newScalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func newSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}
