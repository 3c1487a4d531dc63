// Package reconcile diffs declared packages against each backend's
// installed set and drives the install operations that close the gap.
package reconcile

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/pkm/internal/backend"
	"github.com/conn-castle/pkm/internal/manifest"
	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/resolver"
	"github.com/conn-castle/pkm/internal/spec"
)

// Outcome classifies what happened to one backend during a sync.
type Outcome int

const (
	// OutcomeSkipped means the backend tool was unavailable.
	OutcomeSkipped Outcome = iota
	// OutcomeSatisfied means every declared package was already installed.
	OutcomeSatisfied
	// OutcomeApplied means an install ran and succeeded.
	OutcomeApplied
	// OutcomeFailed means an install ran and failed.
	OutcomeFailed
)

// Report is the per-backend result of one sync pass.
type Report struct {
	Backend string
	Outcome Outcome
	Missing []string
}

// Summary accumulates results across every backend in one command.
type Summary struct {
	Reports   []Report
	Successes int
	Errors    int
}

// AllOK reports whether the whole pass finished without errors.
func (s *Summary) AllOK() bool {
	return s.Errors == 0
}

var (
	okColor  = color.New(color.FgGreen)
	errColor = color.New(color.FgRed)
	dimColor = color.New(color.Faint)

	// CustomColor renders the custom pseudo-backend, which has no registry
	// record to carry a color of its own.
	CustomColor = color.New(color.FgMagenta)
)

// Engine reconciles a resolved set against live backend state. Backends run
// strictly sequentially: package managers lock their own databases and the
// command echoes must stay readable.
type Engine struct {
	reg    *backend.Registry
	custom *backend.Custom
	out    io.Writer
}

// New returns an engine writing progress to out.
func New(reg *backend.Registry, custom *backend.Custom, out io.Writer) *Engine {
	return &Engine{reg: reg, custom: custom, out: out}
}

// Sync installs whatever the resolved set declares and the backends do not
// yet have. A failing backend never stops the others; the summary carries
// the accounting for the command's exit status.
func (e *Engine) Sync(set *resolver.Set, catalog *spec.Catalog, dryRun bool) *Summary {
	summary := &Summary{}
	for _, id := range e.reg.Reorder(set.Backends()) {
		names := set.Names(id)
		if len(names) == 0 {
			continue
		}
		if id == manifest.CustomKey {
			e.syncCustom(names, catalog, dryRun, summary)
			continue
		}
		info, found := e.reg.Lookup(id)
		if !found {
			continue
		}
		e.syncBackend(info, names, dryRun, summary)
	}
	return summary
}

func (e *Engine) syncBackend(info *backend.Info, declared []string, dryRun bool, summary *Summary) {
	if !info.Impl.Available() {
		errColor.Fprintf(e.out, messages.ErrLineFmt, fmt.Sprintf(messages.ReconcileUnavailableFmt, info.ID, info.Tool))
		summary.Errors++
		summary.Reports = append(summary.Reports, Report{Backend: info.ID, Outcome: OutcomeSkipped})
		return
	}

	installed := MembershipSet(info)
	var missing []string
	for _, name := range declared {
		if !installed.Contains(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		fmt.Fprintf(e.out, messages.ReconcileSatisfiedFmt, info.Color.Sprint(info.ID), len(declared))
		summary.Successes++
		summary.Reports = append(summary.Reports, Report{Backend: info.ID, Outcome: OutcomeSatisfied})
		return
	}

	Header(e.out, messages.ActionInstalling, info.ID, info.Color, missing)
	dimColor.Fprintf(e.out, messages.ReconcileSkippingFmt, len(declared)-len(missing))

	res := info.Impl.Install(missing, dryRun)
	if res.OK {
		summary.Successes++
		summary.Reports = append(summary.Reports, Report{Backend: info.ID, Outcome: OutcomeApplied, Missing: missing})
		okColor.Fprintf(e.out, messages.OkLineFmt, messages.ReconcileDone)
		return
	}
	summary.Errors++
	summary.Reports = append(summary.Reports, Report{Backend: info.ID, Outcome: OutcomeFailed, Missing: missing})
	message := res.Message
	if message == "" {
		message = messages.ReconcileInstallFailed
	}
	errColor.Fprintf(e.out, messages.ErrLineFmt, message)
}

// syncCustom installs script-based packages one by one. A declared name
// without a spec is a per-item error; the remaining names still run.
func (e *Engine) syncCustom(declared []string, catalog *spec.Catalog, dryRun bool, summary *Summary) {
	var missing []string
	known := 0
	for _, name := range declared {
		pkg, found := catalog.Lookup(name)
		if !found {
			errColor.Fprintf(e.out, messages.ErrLineFmt, fmt.Sprintf(messages.ReconcileNoSpecFmt, name))
			summary.Errors++
			continue
		}
		known++
		if !e.custom.Installed(pkg) {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		if known > 0 {
			fmt.Fprintf(e.out, messages.ReconcileSatisfiedFmt, CustomColor.Sprint(manifest.CustomKey), known)
			summary.Reports = append(summary.Reports, Report{Backend: manifest.CustomKey, Outcome: OutcomeSatisfied})
		}
		return
	}

	Header(e.out, messages.ActionInstalling, manifest.CustomKey, CustomColor, missing)
	dimColor.Fprintf(e.out, messages.ReconcileSkippingFmt, known-len(missing))

	outcome := OutcomeApplied
	for _, name := range missing {
		pkg, _ := catalog.Lookup(name)
		CustomColor.Fprintf(e.out, messages.ReconcileItemFmt, name)
		if len(pkg.Depends) > 0 {
			dimColor.Fprintf(e.out, messages.SpecDependsLineFmt, strings.Join(pkg.Depends, ", "))
		}
		res := e.custom.Install(pkg, dryRun)
		if res.OK {
			okColor.Fprintf(e.out, messages.OkLineFmt, fmt.Sprintf(messages.ReconcileItemOKFmt, name))
			continue
		}
		summary.Errors++
		outcome = OutcomeFailed
		message := res.Message
		if message == "" {
			message = fmt.Sprintf(messages.ReconcileItemFailFmt, name)
		}
		errColor.Fprintf(e.out, messages.ErrLineFmt, message)
	}
	if outcome == OutcomeApplied {
		summary.Successes++
	}
	summary.Reports = append(summary.Reports, Report{Backend: manifest.CustomKey, Outcome: outcome, Missing: missing})
}

// Header introduces a per-backend action block. Lists longer than three
// packages are abbreviated to a count so headers stay one line.
func Header(out io.Writer, action, id string, c *color.Color, names []string) {
	list := strings.Join(names, ", ")
	if len(names) > 3 {
		list = fmt.Sprintf(messages.ReconcileCountFmt, len(names))
	}
	fmt.Fprintf(out, messages.ReconcileHeaderFmt, c.Sprint("▶ "+action), c.Sprint(id), list)
}
