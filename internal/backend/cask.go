package backend

import (
	"regexp"
	"strings"
)

// Cask manages Homebrew casks (GUI applications).
type Cask struct {
	sys System
}

var caskInfoHead = regexp.MustCompile(`^==> (\S+): (.+)$`)

func (c *Cask) Available() bool {
	_, err := c.sys.LookPath("brew")
	return err == nil
}

func (c *Cask) Install(names []string, dryRun bool) Result {
	return c.sys.Run(append([]string{"brew", "install", "--cask"}, names...), dryRun)
}

func (c *Cask) Remove(names []string, dryRun bool) Result {
	return c.sys.Run(append([]string{"brew", "uninstall", "--cask"}, names...), dryRun)
}

func (c *Cask) ListInstalled() []PackageRecord {
	out, err := c.sys.Capture("brew list --cask --versions")
	if err != nil {
		return nil
	}
	return parseBrewVersions(out)
}

func (c *Cask) Details(name string) (*PackageDetails, bool) {
	out, err := c.sys.Capture("brew info --cask " + name)
	if err != nil {
		return nil, false
	}
	lines := strings.Split(out, "\n")
	if strings.TrimSpace(out) == "" {
		return nil, false
	}
	details := &PackageDetails{Name: name, Version: "unknown"}
	if m := caskInfoHead.FindStringSubmatch(lines[0]); m != nil {
		details.Name = m[1]
		details.Version = strings.TrimSpace(m[2])
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

func (c *Cask) Update(names []string, dryRun bool) Result {
	if len(names) > 0 {
		return c.sys.Run(append([]string{"brew", "upgrade", "--cask"}, names...), dryRun)
	}
	return c.sys.Run([]string{"brew", "upgrade", "--cask"}, dryRun)
}
