package messages

// Backend execution and bootstrap messages.
const (
	// RunnerWouldRunFmt echoes a command in dry-run mode.
	RunnerWouldRunFmt = "  would run: %s\n"
	// RunnerExecFmt echoes a command before live execution.
	RunnerExecFmt = "  $ %s\n"
	// RunnerScriptDryFmt introduces a dry-run script listing.
	RunnerScriptDryFmt = "  would run in %s:\n"
	// RunnerScriptLineFmt indents one script line in a dry-run listing.
	RunnerScriptLineFmt = "    %s\n"
	// RunnerScriptExecFmt announces live script execution.
	RunnerScriptExecFmt = "  running in %s...\n"

	// MasManualRemoval is returned when mas is asked to uninstall.
	MasManualRemoval = "manual removal required"
	// MasRemoveWarning explains why mas removal is a no-op.
	MasRemoveWarning = "mas cannot uninstall apps; remove via Finder or Launchpad"

	// CargoUpdateHint tells the user how to get the update plugin.
	CargoUpdateHint = "cargo-update not installed; run: cargo install cargo-update --locked"

	// BootstrapNoPlatformCmdFmt is returned when a tool has no installer for this platform.
	BootstrapNoPlatformCmdFmt = "no install command for %s on %s"
)
