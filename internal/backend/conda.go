package backend

import (
	"fmt"
	"strings"
)

// Conda manages conda packages through micromamba, always against a single
// named environment.
type Conda struct {
	sys System
	// Env is the micromamba environment everything operates on.
	Env string
}

func (c *Conda) Available() bool {
	_, err := c.sys.LookPath("micromamba")
	return err == nil
}

func (c *Conda) Install(names []string, dryRun bool) Result {
	return c.sys.Run(append([]string{"micromamba", "install", "-n", c.Env, "-y"}, names...), dryRun)
}

func (c *Conda) Remove(names []string, dryRun bool) Result {
	return c.sys.Run(append([]string{"micromamba", "remove", "-n", c.Env, "-y"}, names...), dryRun)
}

// ListInstalled skips packages that arrived through pip: their channel
// column reads "pypi" and they are not conda's to manage.
func (c *Conda) ListInstalled() []PackageRecord {
	out, err := c.sys.Capture("micromamba list -n " + c.Env)
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		if parts[len(parts)-1] == "pypi" {
			continue
		}
		records = append(records, PackageRecord{Name: parts[0], Version: parts[1]})
	}
	return records
}

func (c *Conda) Details(name string) (*PackageDetails, bool) {
	out, err := c.sys.Capture(fmt.Sprintf("micromamba list -n %s '^%s$'", c.Env, name))
	if err != nil {
		return nil, false
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 4 && parts[0] == name {
			return &PackageDetails{
				Name:     parts[0],
				Version:  parts[1],
				Summary:  "build: " + parts[2],
				Location: "channel: " + parts[3],
			}, true
		}
	}
	return nil, false
}

func (c *Conda) Update(names []string, dryRun bool) Result {
	if len(names) > 0 {
		return c.sys.Run(append([]string{"micromamba", "update", "-n", c.Env, "-y"}, names...), dryRun)
	}
	return c.sys.Run([]string{"micromamba", "update", "-n", c.Env, "--all", "-y"}, dryRun)
}
