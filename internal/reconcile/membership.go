package reconcile

import (
	"strings"

	"github.com/conn-castle/pkm/internal/backend"
)

// Membership is an installed-name set for one backend.
type Membership struct {
	names       map[string]bool
	insensitive bool
}

// MembershipSet queries the backend's installed packages and builds the
// name set used for missing-package computation. Backends flagged with
// MatchDisplayNames (winget) also match on display names and
// case-insensitively, since the manifest may carry either form.
func MembershipSet(info *backend.Info) Membership {
	records := info.Impl.ListInstalled()
	m := Membership{names: make(map[string]bool, len(records)), insensitive: info.MatchDisplayNames}
	for _, rec := range records {
		m.names[rec.Name] = true
		if m.insensitive {
			m.names[strings.ToLower(rec.Name)] = true
			if rec.DisplayName != "" {
				m.names[rec.DisplayName] = true
				m.names[strings.ToLower(rec.DisplayName)] = true
			}
		}
	}
	return m
}

// Contains reports whether a declared name matches an installed package.
func (m Membership) Contains(name string) bool {
	if m.names[name] {
		return true
	}
	return m.insensitive && m.names[strings.ToLower(name)]
}
