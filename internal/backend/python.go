package backend

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Python manages Python CLI tools through uv's tool facility. Each tool
// lives in its own venv, so installs go one name at a time.
type Python struct {
	sys System
}

var uvToolLine = regexp.MustCompile(`^(\S+)\s+v?(\S+)$`)

func (p *Python) Available() bool {
	_, err := p.sys.LookPath("uv")
	return err == nil
}

// Install forces reinstallation so a requested tool always ends up on the
// current version even when a stale venv exists.
func (p *Python) Install(names []string, dryRun bool) Result {
	return each(names, func(name string) Result {
		return p.sys.Run([]string{"uv", "tool", "install", name, "--force"}, dryRun)
	})
}

func (p *Python) Remove(names []string, dryRun bool) Result {
	return each(names, func(name string) Result {
		return p.sys.Run([]string{"uv", "tool", "uninstall", name}, dryRun)
	})
}

// ListInstalled parses top-level `name vX.Y.Z` lines; the indented
// `- binary` continuation lines are skipped.
func (p *Python) ListInstalled() []PackageRecord {
	out, err := p.sys.Capture("uv tool list")
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		if match := uvToolLine.FindStringSubmatch(line); match != nil {
			records = append(records, PackageRecord{Name: match[1], Version: match[2]})
		}
	}
	return records
}

// Details reads metadata from the tool venv's own pip when present and
// collects provided binaries from the tool listing.
func (p *Python) Details(name string) (*PackageDetails, bool) {
	var installed *PackageRecord
	for _, rec := range p.ListInstalled() {
		if rec.Name == name {
			installed = &rec
			break
		}
	}
	if installed == nil {
		return nil, false
	}
	details := &PackageDetails{Name: name, Version: installed.Version}

	home, err := homedir.Dir()
	if err == nil {
		pipPath := filepath.Join(home, ".local", "share", "uv", "tools", name, "bin", "pip")
		if _, statErr := os.Stat(pipPath); statErr == nil {
			if out, capErr := p.sys.Capture(pipPath + " show " + name); capErr == nil {
				applyPipShow(details, out)
			}
		}
	}

	if out, capErr := p.sys.Capture("uv tool list"); capErr == nil {
		inPackage := false
		for _, line := range strings.Split(out, "\n") {
			switch {
			case strings.HasPrefix(line, name+" "):
				inPackage = true
			case inPackage && strings.HasPrefix(line, "-"):
				details.Binaries = append(details.Binaries, strings.TrimSpace(strings.TrimLeft(line, "- ")))
			case inPackage && strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " "):
				return details, true
			}
		}
	}
	return details, true
}

func applyPipShow(details *PackageDetails, out string) {
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Summary":
			details.Summary = value
		case "Home-page":
			details.Homepage = value
		case "License":
			details.License = value
		case "Location":
			details.Location = value
		case "Requires":
			if value != "" {
				for _, req := range strings.Split(value, ",") {
					details.Requires = append(details.Requires, strings.TrimSpace(req))
				}
			}
		}
	}
}

func (p *Python) Update(names []string, dryRun bool) Result {
	if len(names) == 0 {
		return p.sys.Run([]string{"uv", "tool", "upgrade", "--all"}, dryRun)
	}
	return each(names, func(name string) Result {
		return p.sys.Run([]string{"uv", "tool", "upgrade", name}, dryRun)
	})
}
