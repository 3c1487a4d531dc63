package manifest

import (
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/platform"
)

// FlatSection holds the surviving entries declared under one backend
// identifier (or the custom key).
type FlatSection struct {
	Backend string
	Entries []Entry
}

// Flat is the platform-filtered view of a document: one section per backend
// that still has entries, in active-category order. Sections keep the
// declaring backend; override resolution happens later.
type Flat struct {
	Sections []FlatSection
}

// Flatten extracts entries for the given active categories, drops entries
// whose platform restriction does not match, and de-duplicates each section
// by parsed name while keeping declaration order.
func (d *Document) Flatten(active []backend.Category, cls *platform.Classifier) (*Flat, error) {
	flat := &Flat{}
	for _, cat := range active {
		if cat.Key == CustomKey {
			entries, err := d.sectionEntries(mappingValue(d.root, CustomKey), CustomKey, cls)
			if err != nil {
				return nil, err
			}
			if len(entries) > 0 {
				flat.Sections = append(flat.Sections, FlatSection{Backend: CustomKey, Entries: entries})
			}
			continue
		}
		catMapping := mappingValue(d.root, cat.Key)
		if catMapping == nil {
			continue
		}
		for _, id := range cat.Members {
			entries, err := d.sectionEntries(mappingValue(catMapping, id), cat.Key+"."+id, cls)
			if err != nil {
				return nil, err
			}
			if len(entries) > 0 {
				flat.Sections = append(flat.Sections, FlatSection{Backend: id, Entries: entries})
			}
		}
	}
	return flat, nil
}

func (d *Document) sectionEntries(seq *yaml.Node, section string, cls *platform.Classifier) ([]Entry, error) {
	entries, err := decodeEntries(seq, section)
	if err != nil {
		return nil, err
	}
	var kept []Entry
	seen := map[string]bool{}
	for _, entry := range entries {
		if !cls.Matches(entry.Platforms) {
			continue
		}
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true
		kept = append(kept, entry)
	}
	return kept, nil
}

// CustomEntry returns the declared custom entry for name regardless of its
// platform restriction, so callers can distinguish "not declared" from
// "declared for another platform".
func (d *Document) CustomEntry(name string) (Entry, bool) {
	entries, err := decodeEntries(mappingValue(d.root, CustomKey), CustomKey)
	if err != nil {
		return Entry{}, false
	}
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return Entry{}, false
}

// Section returns the entries declared under one backend identifier.
func (f *Flat) Section(id string) []Entry {
	for _, section := range f.Sections {
		if section.Backend == id {
			return section.Entries
		}
	}
	return nil
}

// Backends lists the section identifiers in declaration order.
func (f *Flat) Backends() []string {
	ids := make([]string, 0, len(f.Sections))
	for _, section := range f.Sections {
		ids = append(ids, section.Backend)
	}
	return ids
}

// DeclaringSection finds where a package name is declared. The custom
// section is checked first, matching the original lookup order.
func (f *Flat) DeclaringSection(name string) (string, bool) {
	for _, entry := range f.Section(CustomKey) {
		if entry.Name == name {
			return CustomKey, true
		}
	}
	for _, section := range f.Sections {
		if section.Backend == CustomKey {
			continue
		}
		for _, entry := range section.Entries {
			if entry.Name == name {
				return section.Backend, true
			}
		}
	}
	return "", false
}
