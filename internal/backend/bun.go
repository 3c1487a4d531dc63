package backend

import (
	"regexp"
	"strings"
)

// Bun manages bun global packages.
type Bun struct {
	sys System
}

// bunTreeEntry pulls `package@version` out of the `bun pm ls -g` tree
// drawing, whatever branch characters precede it.
var bunTreeEntry = regexp.MustCompile(`([^@\s├└─│]+)@([^\s\[]+)`)

func (b *Bun) Available() bool {
	_, err := b.sys.LookPath("bun")
	return err == nil
}

func (b *Bun) Install(names []string, dryRun bool) Result {
	return each(names, func(name string) Result {
		return b.sys.Run([]string{"bun", "add", "-g", name}, dryRun)
	})
}

func (b *Bun) Remove(names []string, dryRun bool) Result {
	return each(names, func(name string) Result {
		return b.sys.Run([]string{"bun", "remove", "-g", name}, dryRun)
	})
}

func (b *Bun) ListInstalled() []PackageRecord {
	out, err := b.sys.Capture("bun pm ls -g")
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		if match := bunTreeEntry.FindStringSubmatch(line); match != nil {
			records = append(records, PackageRecord{Name: match[1], Version: match[2]})
		}
	}
	return records
}

func (b *Bun) Details(name string) (*PackageDetails, bool) {
	var version string
	for _, rec := range b.ListInstalled() {
		if rec.Name == name {
			version = rec.Version
			break
		}
	}
	if version == "" {
		return nil, false
	}
	details := &PackageDetails{Name: name, Version: version}
	out, err := b.sys.Capture("bun pm info " + name)
	if err != nil {
		return details, true
	}
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "description":
			if details.Summary == "" {
				details.Summary = value
			}
		case "homepage":
			details.Homepage = value
		case "license":
			details.License = value
		}
	}
	return details, true
}

func (b *Bun) Update(names []string, dryRun bool) Result {
	if len(names) == 0 {
		return b.sys.Run([]string{"bun", "update", "-g"}, dryRun)
	}
	return each(names, func(name string) Result {
		return b.sys.Run([]string{"bun", "update", "-g", name}, dryRun)
	})
}
