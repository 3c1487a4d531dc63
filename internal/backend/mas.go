package backend

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conn-castle/pkm/internal/messages"
)

// Mas manages Mac App Store apps through mas-cli. Names are numeric store
// IDs; the human app title travels as the display name.
type Mas struct {
	sys System
}

var masListLine = regexp.MustCompile(`^(\d+)\s+(.+?)\s+\(([^)]+)\)$`)

func (m *Mas) Available() bool {
	_, err := m.sys.LookPath("mas")
	return err == nil
}

func (m *Mas) Install(names []string, dryRun bool) Result {
	return each(names, func(name string) Result {
		return m.sys.Run([]string{"mas", "install", name}, dryRun)
	})
}

// Remove is an advisory no-op: the App Store has no CLI uninstall, apps are
// removed through Finder or Launchpad.
func (m *Mas) Remove(names []string, dryRun bool) Result {
	return Result{OK: true, Message: messages.MasManualRemoval}
}

func (m *Mas) ListInstalled() []PackageRecord {
	out, err := m.sys.Capture("mas list")
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		if match := masListLine.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			records = append(records, PackageRecord{
				Name:        match[1],
				Version:     match[3],
				DisplayName: match[2],
			})
		}
	}
	return records
}

func (m *Mas) Details(name string) (*PackageDetails, bool) {
	for _, rec := range m.ListInstalled() {
		if rec.Name == name {
			return &PackageDetails{
				Name:    rec.DisplayName,
				Version: rec.Version,
				Summary: fmt.Sprintf("Mac App Store (ID: %s)", rec.Name),
			}, true
		}
	}
	return nil, false
}

func (m *Mas) Update(names []string, dryRun bool) Result {
	if len(names) > 0 {
		return m.sys.Run(append([]string{"mas", "upgrade"}, names...), dryRun)
	}
	return m.sys.Run([]string{"mas", "upgrade"}, dryRun)
}
