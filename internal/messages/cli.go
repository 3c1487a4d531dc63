package messages

// Version display formats.
const (
	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "pkm"
	// RootShort is the short description for the root command.
	RootShort = "Declarative package manifest manager"
	// RootLong is the long description for the root command.
	RootLong = "Manage packages across brew, cask, mas, winget, conda, python (uv), rust (cargo),\nbun, and custom scripts with a single YAML manifest."

	RootFlagManifest = "Path to the YAML manifest file (default: ~/.config/packages.yaml)"

	InitUse   = "init"
	InitShort = "Install all packages from the manifest"
	SyncUse   = "sync"
	SyncShort = "Sync packages from the manifest (alias for init)"

	FlagDryRun = "Show what would be done without executing"
	FlagTypes  = "Comma-separated package types (e.g. conda,python)"

	InstallUse   = "install <type> <name>"
	InstallShort = "Install a package and add it to the manifest"

	RemoveUse      = "remove <name>"
	RemoveShort    = "Remove a package and update the manifest"
	RemoveFlagType = "Package type (auto-detected if not specified)"
	RemoveFlagKeep = "Keep the package entry in the manifest"
	RemoveFlagYes  = "Skip the confirmation prompt"
	RemoveAborted  = "aborted"

	UpdateUse   = "update [name]"
	UpdateShort = "Update one package or everything declared"

	ListUse         = "list"
	ListShort       = "List tracked packages grouped by category"
	ListFlagVerbose = "Show all packages, including untracked ones"
	ListLegend      = "Legend:"
	ListTrackedHint = "Showing tracked packages only. Use -v for all."

	StatusUse   = "status"
	StatusShort = "Show package manager availability and manifest summary"

	BootstrapUse   = "bootstrap [backend]"
	BootstrapShort = "Install the package manager tools themselves"

	ShowUse      = "show <name>"
	ShowShort    = "Show detailed information about a package"
	ShowFlagType = "Package type (auto-detected if not specified)"

	EditUse   = "edit"
	EditShort = "Open the manifest file in your editor"

	// ManifestPathFmt prints the manifest location in command output.
	ManifestPathFmt = "Manifest: %s\n"
	TypesLineFmt    = "Package types: %s\n"
	DetectedTypeFmt = "Detected type: %s\n"
	DryRunBanner    = "DRY RUN - no changes will be made"

	AddedToManifestFmt     = "Added to manifest: %s\n"
	RemovedFromManifestFmt = "Removed from manifest: %s\n"
	KeptInManifest         = "Kept in manifest (--keep)"

	RemoveConfirmFmt = "Remove %s (%s)?"
	// PromptRequiresTerminal is returned when a confirmation prompt is needed
	// but stdin/stdout is not a terminal.
	PromptRequiresTerminal = "confirmation requires an interactive terminal; pass --yes to proceed"

	EditorOpeningFmt      = "Opening: %s\n"
	EditorNotFoundFmt     = "editor %q not found"
	EditorExitFmt         = "editor exited with code %d"
	ShellLineFmt          = "Shell: %s\n"
	PlatformLineFmt       = "Platform: %s\n"
	UnknownBackendFmt     = "unknown package type %q (valid types: %s)"
	ToolUnavailableFmt    = "required tool %q not found in PATH"
	PackageNotInManifest  = "package %q not found in the manifest; use --type to specify the package type"
	PackageNotFoundFmt    = "package %q not found"
	ShowTypeHint          = "Try specifying --type if the package is installed"
	UpdatingLineFmt       = "Updating: %s\n"
	SyncCompletedOK       = "All packages installed successfully"
	SyncCompletedErrsFmt  = "Completed with %d error(s)"
	NotTracked            = "no"
	Tracked               = "yes"
	BootstrapAllHeader    = "Bootstrapping package managers..."
	BootstrapPresentFmt   = "%s is already installed (%s)\n"
	BootstrapInstallFmt   = "Installing %s...\n"
	BootstrapDoneFmt      = "%s installed successfully\n"
	BootstrapFailedFmt    = "failed to install %s: %s"
	BootstrapNoCommandFmt = "no install command defined for %s"

	// WarnLineFmt prefixes an advisory line.
	WarnLineFmt = "! %s\n"

	// CategoryHeaderFmt introduces one category block in list and status output.
	CategoryHeaderFmt = "\n━━━ %s ━━━\n"
	// ListHeaderFmt introduces one backend block: colored identifier, tracked count.
	ListHeaderFmt = "\n%s (%d)\n"
	ListLineFmt   = "  %s\n"

	// ShowHeaderFmt prints name, version, and backend identifier.
	ShowHeaderFmt = "\n%s %s [%s]\n"
	// ShowVersionFmt prefixes standard package versions.
	ShowVersionFmt = "v%s"
	// ShowCustomVersionFmt wraps the pseudo-version of script packages.
	ShowCustomVersionFmt = "(%s)"
	ShowFieldFmt         = "  %-10s %s\n"
	ShowFieldVersion     = "Version"
	ShowFieldType        = "Type"
	ShowFieldTracked     = "Tracked"
	ShowFieldSummary     = "Summary"
	ShowFieldHomepage    = "Homepage"
	ShowFieldLicense     = "License"
	ShowFieldLocation    = "Location"
	ShowFieldRequires    = "Requires"
	ShowFieldBinaries    = "Binaries"

	// PlatformWSLSuffix marks a Linux host running under WSL.
	PlatformWSLSuffix = " (wsl)"
)
