package backend

import (
	"fmt"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/spec"
)

// Custom runs user-defined install/check/remove scripts from the spec
// catalog. It is not a Backend: operations take a whole spec rather than a
// bare name, and there is no notion of versions or updates.
type Custom struct {
	sys System
}

// NewCustom returns a script runner over sys.
func NewCustom(sys System) *Custom {
	return &Custom{sys: sys}
}

func (c *Custom) shellFor(pkg spec.Package) string {
	if pkg.Shell != "" {
		return pkg.Shell
	}
	return c.sys.Shell()
}

// Shell reports the shell a package's scripts will run under.
func (c *Custom) Shell(pkg spec.Package) string {
	return c.shellFor(pkg)
}

// Installed runs the package's check command; exit 0 means installed.
// A package without a check command cannot be probed and counts as missing.
func (c *Custom) Installed(pkg spec.Package) bool {
	if pkg.Check == "" {
		return false
	}
	return c.sys.CheckScript(c.shellFor(pkg), pkg.Check)
}

// Install runs the package's install script.
func (c *Custom) Install(pkg spec.Package, dryRun bool) Result {
	return c.sys.RunScript(c.shellFor(pkg), pkg.Install, dryRun)
}

// Remove runs the package's remove script. A spec without one succeeds with
// an advisory so reconciliation can move on.
func (c *Custom) Remove(pkg spec.Package, dryRun bool) Result {
	if pkg.Remove == "" {
		return Result{OK: true, Message: fmt.Sprintf(messages.SpecNoRemoveFmt, pkg.Name)}
	}
	return c.sys.RunScript(c.shellFor(pkg), pkg.Remove, dryRun)
}

// InstalledSet reports which of the given specs are currently installed.
func (c *Custom) InstalledSet(pkgs []spec.Package) map[string]bool {
	installed := make(map[string]bool, len(pkgs))
	for _, pkg := range pkgs {
		if c.Installed(pkg) {
			installed[pkg.Name] = true
		}
	}
	return installed
}

// Details describes an installed custom package.
func (c *Custom) Details(pkg spec.Package) (*PackageDetails, bool) {
	if !c.Installed(pkg) {
		return nil, false
	}
	summary := pkg.Description
	if summary == "" {
		shellName := pkg.Shell
		if shellName == "" {
			shellName = "default shell"
		}
		summary = "Custom package (" + shellName + ")"
	}
	return &PackageDetails{
		Name:     pkg.Name,
		Version:  "custom",
		Summary:  summary,
		Requires: pkg.Depends,
	}, true
}
