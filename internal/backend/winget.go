package backend

import (
	"regexp"
	"strings"
)

// Winget manages Windows packages from inside WSL via winget.exe. Canonical
// names are package IDs; winget reports a separate display name per package.
type Winget struct {
	sys System
}

var wingetColumns = regexp.MustCompile(`\s{2,}`)

func (w *Winget) Available() bool {
	_, err := w.sys.LookPath("winget.exe")
	return err == nil
}

// Install runs one invocation per package; winget rejects batches. Every
// package is attempted even when an earlier one fails.
func (w *Winget) Install(names []string, dryRun bool) Result {
	allOK := true
	for _, name := range names {
		res := w.sys.Run([]string{
			"winget.exe", "install", shellQuote(name),
			"--silent", "--accept-package-agreements", "--accept-source-agreements",
		}, dryRun)
		allOK = allOK && res.OK
	}
	return Result{OK: allOK}
}

func (w *Winget) Remove(names []string, dryRun bool) Result {
	allOK := true
	for _, name := range names {
		res := w.sys.Run([]string{"winget.exe", "uninstall", shellQuote(name)}, dryRun)
		allOK = allOK && res.OK
	}
	return Result{OK: allOK}
}

func (w *Winget) ListInstalled() []PackageRecord {
	out, err := w.sys.Capture("winget.exe list")
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Name") || strings.HasPrefix(line, "---") {
			continue
		}
		parts := wingetColumns.Split(line, -1)
		if len(parts) >= 3 {
			records = append(records, PackageRecord{
				Name:        parts[1],
				Version:     parts[2],
				DisplayName: parts[0],
			})
		}
	}
	return records
}

func (w *Winget) Details(name string) (*PackageDetails, bool) {
	out, err := w.sys.Capture("winget.exe show " + shellQuote(name))
	if err != nil {
		return nil, false
	}
	details := &PackageDetails{Name: name, Version: "unknown"}
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch {
		case key == "Version":
			details.Version = value
		case key == "Homepage":
			details.Homepage = value
		case key == "Description" && details.Summary == "":
			details.Summary = value
		case key == "License":
			details.License = value
		}
	}
	return details, true
}

func (w *Winget) Update(names []string, dryRun bool) Result {
	if len(names) == 0 {
		return w.sys.Run([]string{"winget.exe", "upgrade", "--all"}, dryRun)
	}
	allOK := true
	for _, name := range names {
		res := w.sys.Run([]string{"winget.exe", "upgrade", shellQuote(name)}, dryRun)
		allOK = allOK && res.OK
	}
	return Result{OK: allOK}
}
