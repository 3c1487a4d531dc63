package backend

import (
	"regexp"
	"strings"

	"github.com/conn-castle/pkm/internal/messages"
)

// Rust manages cargo-installed binaries.
type Rust struct {
	sys System
}

// cargoListHead matches top-level `name vX.Y.Z:` lines; indented lines below
// each are the package's binaries.
var cargoListHead = regexp.MustCompile(`^(\S+)\s+v(\S+):$`)

func (r *Rust) Available() bool {
	_, err := r.sys.LookPath("cargo")
	return err == nil
}

func (r *Rust) Install(names []string, dryRun bool) Result {
	return r.sys.Run(append([]string{"cargo", "install", "--locked"}, names...), dryRun)
}

func (r *Rust) Remove(names []string, dryRun bool) Result {
	return r.sys.Run(append([]string{"cargo", "uninstall"}, names...), dryRun)
}

func (r *Rust) ListInstalled() []PackageRecord {
	out, err := r.sys.Capture("cargo install --list")
	if err != nil {
		return nil
	}
	var records []PackageRecord
	for _, line := range strings.Split(out, "\n") {
		if match := cargoListHead.FindStringSubmatch(line); match != nil {
			records = append(records, PackageRecord{Name: match[1], Version: match[2]})
		}
	}
	return records
}

func (r *Rust) Details(name string) (*PackageDetails, bool) {
	out, err := r.sys.Capture("cargo install --list")
	if err != nil {
		return nil, false
	}
	var details *PackageDetails
	for _, line := range strings.Split(out, "\n") {
		if match := cargoListHead.FindStringSubmatch(line); match != nil {
			if details != nil {
				return details, true
			}
			if match[1] == name {
				details = &PackageDetails{Name: match[1], Version: match[2]}
			}
			continue
		}
		if details != nil && strings.TrimSpace(line) != "" {
			details.Binaries = append(details.Binaries, strings.TrimSpace(line))
		}
	}
	if details != nil {
		return details, true
	}
	return nil, false
}

// Update requires the cargo-update plugin; without it there is no in-place
// upgrade path, so the result carries installation guidance instead.
func (r *Rust) Update(names []string, dryRun bool) Result {
	if !r.hasCargoUpdate() {
		return Result{Message: messages.CargoUpdateHint}
	}
	if len(names) > 0 {
		return r.sys.Run(append([]string{"cargo", "install-update"}, names...), dryRun)
	}
	return r.sys.Run([]string{"cargo", "install-update", "-a"}, dryRun)
}

func (r *Rust) hasCargoUpdate() bool {
	for _, rec := range r.ListInstalled() {
		if rec.Name == "cargo-update" {
			return true
		}
	}
	return false
}
