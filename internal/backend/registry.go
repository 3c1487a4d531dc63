package backend

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/conn-castle/pkm/internal/messages"
	"github.com/conn-castle/pkm/internal/platform"
)

// Well-known backend identifiers. The identifier is the sole join key
// between manifest sections and registry entries.
const (
	IDBrew   = "brew"
	IDCask   = "cask"
	IDMas    = "mas"
	IDWinget = "winget"
	IDConda  = "conda"
	IDPython = "python"
	IDRust   = "rust"
	IDBun    = "bun"
	// IDCustom names the script-based pseudo-backend; it has a category and
	// an order slot but no registry adapter.
	IDCustom = "custom"
)

// Bootstrap platform keys.
const (
	bootstrapDarwin = "darwin"
	bootstrapLinux  = "linux"
	bootstrapAll    = "all"
)

// Info is the registry record for one backend.
type Info struct {
	ID    string
	Color *color.Color
	Tool  string
	// Bootstrap maps platform (darwin/linux/all) to the command that
	// installs the backend tool itself. Empty when self-install is
	// unsupported.
	Bootstrap map[string][]string
	// MatchDisplayNames marks backends whose installed-set membership must
	// also match display names, case-insensitively.
	MatchDisplayNames bool
	Impl              Backend
}

// Category groups backends under a platform gate for display and activation.
type Category struct {
	Key     string
	Title   string
	Gate    string // platform tag, or "" for always active
	Members []string
}

// Registry is the process-wide immutable backend table.
type Registry struct {
	sys        System
	infos      map[string]*Info
	order      []string
	categories []Category
	categoryOf map[string]Category
}

// NewRegistry constructs the full adapter set over one execution System.
func NewRegistry(sys System) *Registry {
	infos := []*Info{
		{
			ID:    IDBrew,
			Color: color.New(color.FgHiYellow),
			Tool:  "brew",
			Impl:  &Brew{sys: sys},
		},
		{
			ID:    IDCask,
			Color: color.New(color.FgHiBlue),
			Tool:  "brew",
			Impl:  &Cask{sys: sys},
		},
		{
			ID:        IDMas,
			Color:     color.New(color.FgHiCyan),
			Tool:      "mas",
			Bootstrap: map[string][]string{bootstrapDarwin: {"brew", "install", "mas"}},
			Impl:      &Mas{sys: sys},
		},
		{
			ID:                IDWinget,
			Color:             color.New(color.FgCyan),
			Tool:              "winget.exe",
			MatchDisplayNames: true,
			Impl:              &Winget{sys: sys},
		},
		{
			ID:    IDConda,
			Color: color.New(color.FgGreen),
			Tool:  "micromamba",
			Bootstrap: map[string][]string{
				bootstrapDarwin: {"brew", "install", "micromamba"},
				bootstrapLinux:  {"sh", "-c", "curl -Ls https://micro.mamba.pm/api/micromamba/linux-64/latest | tar -xvj bin/micromamba && mv bin/micromamba ~/.local/bin/"},
			},
			Impl: &Conda{sys: sys, Env: "base"},
		},
		{
			ID:    IDPython,
			Color: color.New(color.FgYellow),
			Tool:  "uv",
			Bootstrap: map[string][]string{
				bootstrapDarwin: {"brew", "install", "uv"},
				bootstrapLinux:  {"micromamba", "install", "-n", "base", "-y", "uv"},
			},
			Impl: &Python{sys: sys},
		},
		{
			ID:    IDRust,
			Color: color.New(color.FgRed),
			Tool:  "cargo",
			Bootstrap: map[string][]string{
				bootstrapAll: {"sh", "-c", "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y"},
			},
			Impl: &Rust{sys: sys},
		},
		{
			ID:    IDBun,
			Color: color.New(color.FgHiMagenta),
			Tool:  "bun",
			Bootstrap: map[string][]string{
				bootstrapDarwin: {"brew", "install", "oven-sh/bun/bun"},
				bootstrapLinux:  {"sh", "-c", "curl -fsSL https://bun.sh/install | bash"},
			},
			Impl: &Bun{sys: sys},
		},
	}

	categories := []Category{
		{Key: "mac", Title: "macOS", Gate: platform.TagDarwin, Members: []string{IDBrew, IDCask, IDMas}},
		{Key: "wsl", Title: "WSL", Gate: platform.TagWSL, Members: []string{IDWinget}},
		{Key: "general", Title: "General", Members: []string{IDConda, IDPython, IDRust, IDBun}},
		{Key: IDCustom, Title: "Custom", Members: []string{IDCustom}},
	}

	byID := make(map[string]*Info, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}
	categoryOf := make(map[string]Category)
	for _, cat := range categories {
		for _, id := range cat.Members {
			categoryOf[id] = cat
		}
	}

	return &Registry{
		sys:        sys,
		infos:      byID,
		order:      []string{IDBrew, IDCask, IDMas, IDWinget, IDConda, IDPython, IDRust, IDBun, IDCustom},
		categories: categories,
		categoryOf: categoryOf,
	}
}

// Lookup returns the registry record for id.
func (r *Registry) Lookup(id string) (*Info, bool) {
	info, found := r.infos[id]
	return info, found
}

// IDs returns the registered adapter identifiers in preferred order
// (excluding the custom pseudo-backend).
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.infos))
	for _, id := range r.order {
		if _, found := r.infos[id]; found {
			ids = append(ids, id)
		}
	}
	return ids
}

// Order returns the preferred processing order, custom last.
func (r *Registry) Order() []string {
	return r.order
}

// Categories returns all categories in display order.
func (r *Registry) Categories() []Category {
	return r.categories
}

// ActiveCategories returns the categories whose platform gate matches.
func (r *Registry) ActiveCategories(cls *platform.Classifier) []Category {
	active := make([]Category, 0, len(r.categories))
	for _, cat := range r.categories {
		if cls.GateActive(cat.Gate) {
			active = append(active, cat)
		}
	}
	return active
}

// CategoryOf returns the category containing the given backend identifier.
func (r *Registry) CategoryOf(id string) (Category, bool) {
	cat, found := r.categoryOf[id]
	return cat, found
}

// Reorder stable-sorts ids into registry preferred order; unknown
// identifiers keep their original relative order at the end.
func (r *Registry) Reorder(ids []string) []string {
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}
	ordered := make([]string, 0, len(ids))
	for _, id := range r.order {
		if requested[id] {
			ordered = append(ordered, id)
			requested[id] = false
		}
	}
	for _, id := range ids {
		if requested[id] {
			ordered = append(ordered, id)
			requested[id] = false
		}
	}
	return ordered
}

// InstallSelf runs the backend's own installer for the given platform.
func (r *Registry) InstallSelf(info *Info, goos string, dryRun bool) Result {
	if len(info.Bootstrap) == 0 {
		return Result{Message: fmt.Sprintf(messages.BootstrapNoCommandFmt, info.ID)}
	}
	key := bootstrapLinux
	if goos == platform.TagDarwin {
		key = bootstrapDarwin
	}
	cmd := info.Bootstrap[key]
	if cmd == nil {
		cmd = info.Bootstrap[bootstrapAll]
	}
	if cmd == nil {
		return Result{Message: fmt.Sprintf(messages.BootstrapNoPlatformCmdFmt, info.ID, goos)}
	}
	return r.sys.Run(cmd, dryRun)
}
