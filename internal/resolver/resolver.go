// Package resolver maps flattened manifest entries to the backend that will
// actually service them, honoring the "name:backend" fallback syntax.
package resolver

import (
	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/platform"
)

// Set maps concrete backend identifiers to the plain names that will be
// operated on. It is recomputed on every command and never persisted.
type Set struct {
	order []string
	names map[string][]string
}

// Backends returns the backend identifiers in first-seen order.
func (s *Set) Backends() []string {
	return s.order
}

// Names returns the packages resolved to one backend.
func (s *Set) Names(id string) []string {
	return s.names[id]
}

func (s *Set) add(id, name string) {
	if _, seen := s.names[id]; !seen {
		s.order = append(s.order, id)
	}
	s.names[id] = append(s.names[id], name)
}

// Filter returns a set restricted to the given backend identifiers,
// preserving resolution order. Unknown identifiers are simply absent.
func (s *Set) Filter(ids []string) *Set {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}
	filtered := &Set{names: map[string][]string{}}
	for _, id := range s.order {
		if !keep[id] {
			continue
		}
		filtered.order = append(filtered.order, id)
		filtered.names[id] = s.names[id]
	}
	return filtered
}

// Resolve computes the concrete backend for every flattened entry. An
// override wins only when it names a registered backend whose tool is
// available and whose category is active; otherwise the entry falls back to
// its declaring section silently — the same manifest line works across
// machines with different tooling. Custom entries pass through untouched.
func Resolve(flat *manifest.Flat, reg *backend.Registry, cls *platform.Classifier) *Set {
	set := &Set{names: map[string][]string{}}
	for _, section := range flat.Sections {
		if section.Backend == manifest.CustomKey {
			for _, entry := range section.Entries {
				set.add(manifest.CustomKey, entry.Name)
			}
			continue
		}
		for _, entry := range section.Entries {
			set.add(resolveBackend(section.Backend, entry, reg, cls), entry.Name)
		}
	}
	return set
}

func resolveBackend(declaring string, entry manifest.Entry, reg *backend.Registry, cls *platform.Classifier) string {
	if entry.Override == "" {
		return declaring
	}
	info, found := reg.Lookup(entry.Override)
	if !found || !info.Impl.Available() {
		return declaring
	}
	cat, found := reg.CategoryOf(entry.Override)
	if !found || !cls.GateActive(cat.Gate) {
		return declaring
	}
	return entry.Override
}
