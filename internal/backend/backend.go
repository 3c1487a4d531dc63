// Package backend defines the uniform contract every package-manager adapter
// satisfies, the static registry of adapters and categories, and the shared
// shell-routed execution primitive they all use.
package backend

// Result reports the outcome of a backend operation.
type Result struct {
	OK      bool
	Message string
}

// PackageRecord describes one installed package as reported by a backend.
// DisplayName is set when the canonical identifier differs from the human
// label (e.g. a store ID vs. the app title).
type PackageRecord struct {
	Name        string
	Version     string
	DisplayName string
}

// PackageDetails carries rich metadata for a single package.
type PackageDetails struct {
	Name     string
	Version  string
	Summary  string
	Homepage string
	License  string
	Location string
	Requires []string
	Binaries []string
}

// Backend is the capability contract for a package-manager adapter.
//
// Install and Remove operate on batches; a batched adapter reports one
// result for the whole batch. Remove on an adapter with no programmatic
// removal returns an advisory success rather than an error. ListInstalled
// and Details fail soft: query errors yield an empty list or absence, never
// an error. Update with no names updates everything the adapter manages.
// Available is pure and gates every other operation.
type Backend interface {
	Install(names []string, dryRun bool) Result
	Remove(names []string, dryRun bool) Result
	ListInstalled() []PackageRecord
	Details(name string) (*PackageDetails, bool)
	Update(names []string, dryRun bool) Result
	Available() bool
}

// ok is the canonical success result.
func ok() Result {
	return Result{OK: true}
}

// each runs op for every name, stopping at the first failure. Several tools
// only accept one package per invocation; this mirrors that shape.
func each(names []string, op func(name string) Result) Result {
	for _, name := range names {
		if res := op(name); !res.OK {
			return res
		}
	}
	return ok()
}
