package messages

// Reconciliation engine messages.
const (
	// ReconcileHeaderFmt introduces a per-backend action block: action, backend, packages.
	ReconcileHeaderFmt = "\n%s %s: %s\n"
	// ReconcileHeaderNoPkgsFmt introduces a per-backend action block without a package list.
	ReconcileHeaderNoPkgsFmt = "\n%s %s\n"
	// ReconcileCountFmt abbreviates long package lists.
	ReconcileCountFmt = "%d packages"

	// ReconcileSatisfiedFmt reports an already-satisfied backend.
	ReconcileSatisfiedFmt = "\n%s: all %d packages installed\n"
	// ReconcileSkippingFmt reports how many declared packages were already present.
	ReconcileSkippingFmt = "  skipping %d already installed\n"
	// ReconcileUnavailableFmt reports a backend whose tool is missing.
	ReconcileUnavailableFmt = "%s: required tool %q not found in PATH"

	ActionInstalling = "Installing"
	ActionRemoving   = "Removing"
	ActionUpdating   = "Updating"

	// ReconcileDone is the default success message.
	ReconcileDone = "Done"
	// ReconcileInstallFailed is the fallback install failure message.
	ReconcileInstallFailed = "installation failed"
	ReconcileRemoveFailed  = "removal failed"
	ReconcileUpdateFailed  = "update failed"

	// ReconcileItemFmt prints a single custom package name before its scripts run.
	ReconcileItemFmt = "\n  %s\n"
	// ReconcileItemOKFmt reports one installed custom package.
	ReconcileItemOKFmt = "%s installed"
	// ReconcileItemFailFmt reports one failed custom package.
	ReconcileItemFailFmt = "%s installation failed"
	// ReconcileNoSpecFmt reports a declared custom package without a spec.
	ReconcileNoSpecFmt = "no spec found for %q"

	// OkLineFmt prefixes a success line.
	OkLineFmt = "✓ %s\n"
	// ErrLineFmt prefixes an error line.
	ErrLineFmt = "✗ %s\n"
)

// Status command labels.
const (
	StatusTitle          = "Package Manager Status"
	StatusColManager     = "Manager"
	StatusColTool        = "Tool"
	StatusColAvailable   = "Available"
	StatusColPackages    = "Packages"
	StatusCustomTool     = "scripts"
	ListNotAvailable     = "not available"
	ListLegendInstalled  = "installed"
	ListLegendMissing    = "missing"
	ListLegendUntracked  = "untracked"
)
