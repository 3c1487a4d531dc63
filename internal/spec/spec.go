// Package spec loads the custom-package catalog: shell scripts that
// install, check, and remove software no package manager covers.
package spec

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pkm/internal/messages"
)

// EnvSpecsPath overrides the catalog location when set.
const EnvSpecsPath = "PKM_SPECS"

// DefaultFileName is the catalog file kept next to the manifest.
const DefaultFileName = "specs.yaml"

// Package is one custom-package spec. Install is the only required field;
// a spec written as a bare string is shorthand for it.
type Package struct {
	Name        string
	Install     string
	Check       string
	Remove      string
	Shell       string
	Depends     []string
	Description string
}

// UnmarshalYAML accepts either a scalar install command or the full mapping
// form with install/check/remove/shell/depends/description keys.
func (p *Package) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&p.Install)
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf(messages.SpecEntryKindFmt, p.Name)
	}
	var full struct {
		Install     string   `yaml:"install"`
		Check       string   `yaml:"check"`
		Remove      string   `yaml:"remove"`
		Shell       string   `yaml:"shell"`
		Depends     []string `yaml:"depends"`
		Description string   `yaml:"description"`
	}
	if err := node.Decode(&full); err != nil {
		return err
	}
	p.Install = full.Install
	p.Check = full.Check
	p.Remove = full.Remove
	p.Shell = full.Shell
	p.Depends = full.Depends
	p.Description = full.Description
	return nil
}

// Catalog is the named set of custom-package specs.
type Catalog struct {
	packages map[string]Package
}

// Lookup returns the spec for name.
func (c *Catalog) Lookup(name string) (Package, bool) {
	pkg, found := c.packages[name]
	return pkg, found
}

// Names returns all spec names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.packages))
	for name := range c.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of specs in the catalog.
func (c *Catalog) Len() int {
	return len(c.packages)
}

// PathFor returns the catalog path for a given manifest location. The
// PKM_SPECS environment variable wins; otherwise the catalog sits next to
// the manifest.
func PathFor(manifestPath string, getenv func(string) string) string {
	if env := getenv(EnvSpecsPath); env != "" {
		return env
	}
	return filepath.Join(filepath.Dir(manifestPath), DefaultFileName)
}

// Load reads the catalog at path. A missing file is not an error: custom
// packages are optional, so it yields an empty catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{packages: map[string]Package{}}, nil
		}
		return nil, fmt.Errorf(messages.SpecReadFmt, path, err)
	}
	raw := map[string]Package{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(messages.SpecParseFmt, path, err)
	}
	for name, pkg := range raw {
		pkg.Name = name
		raw[name] = pkg
	}
	return &Catalog{packages: raw}, nil
}
