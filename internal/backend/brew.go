package backend

import (
	"regexp"
	"strings"
)

// Brew manages Homebrew formulae.
type Brew struct {
	sys System
}

var brewInfoHead = regexp.MustCompile(`^==> (\S+): .*?(\d+\.\d+[.\d]*)`)

func (b *Brew) Available() bool {
	_, err := b.sys.LookPath("brew")
	return err == nil
}

func (b *Brew) Install(names []string, dryRun bool) Result {
	return b.sys.Run(append([]string{"brew", "install"}, names...), dryRun)
}

func (b *Brew) Remove(names []string, dryRun bool) Result {
	return b.sys.Run(append([]string{"brew", "uninstall"}, names...), dryRun)
}

func (b *Brew) ListInstalled() []PackageRecord {
	out, err := b.sys.Capture("brew list --formula --versions")
	if err != nil {
		return nil
	}
	return parseBrewVersions(out)
}

func (b *Brew) Details(name string) (*PackageDetails, bool) {
	out, err := b.sys.Capture("brew info " + name)
	if err != nil {
		return nil, false
	}
	return parseBrewInfo(name, out)
}

// Update refreshes the formula index first so upgrades see current versions.
func (b *Brew) Update(names []string, dryRun bool) Result {
	if res := b.sys.Run([]string{"brew", "update"}, dryRun); !res.OK {
		return res
	}
	if len(names) > 0 {
		return b.sys.Run(append([]string{"brew", "upgrade"}, names...), dryRun)
	}
	return b.sys.Run([]string{"brew", "upgrade"}, dryRun)
}

// parseBrewVersions handles `brew list --versions` output: one package per
// line, name first, versions after. The last version wins when several are
// kept side by side.
func parseBrewVersions(out string) []PackageRecord {
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(line)
		if len(parts) >= 2 {
			records = append(records, PackageRecord{Name: parts[0], Version: parts[len(parts)-1]})
		}
	}
	return records
}

// parseBrewInfo extracts name/version from the `==> name: stable X.Y.Z`
// header, then takes the first non-URL line as summary and the first URL as
// homepage.
func parseBrewInfo(name, out string) (*PackageDetails, bool) {
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || strings.TrimSpace(out) == "" {
		return nil, false
	}
	details := &PackageDetails{Name: name, Version: "unknown"}
	if m := brewInfoHead.FindStringSubmatch(lines[0]); m != nil {
		details.Name = m[1]
		details.Version = m[2]
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "==>") {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "http") {
			details.Homepage = trimmed
			break
		}
		if details.Summary == "" && trimmed != "" {
			details.Summary = trimmed
		}
	}
	return details, true
}
