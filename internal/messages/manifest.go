package messages

// Manifest loading, parsing, and persistence messages.
const (
	// ManifestMissingFileFmt formats the fatal missing-manifest error.
	ManifestMissingFileFmt = "manifest file not found: %s"
	ManifestReadFmt        = "read manifest %s: %w"
	ManifestParseFmt       = "invalid manifest %s: %w"
	ManifestWriteFmt       = "write manifest %s: %w"
	ManifestEncodeFmt      = "encode manifest: %w"

	// ManifestTopLevelKind rejects non-mapping manifest documents.
	ManifestTopLevelKind = "manifest top level must be a mapping"
	ManifestEntryKindFmt = "invalid entry under %s: expected a string or a name/platforms mapping"
	ManifestEntryNameFmt = "entry under %s is missing a name"

	ManifestResolveHomeFmt = "resolve home directory: %w"

	// ManifestDiffHeader introduces the change preview printed before a save.
	ManifestDiffHeader = "Manifest changes:"
)

// Custom package spec catalog messages.
const (
	SpecReadFmt        = "read specs %s: %w"
	SpecParseFmt       = "invalid specs %s: %w"
	SpecEntryKindFmt   = "spec %q must be an install command string or a mapping"
	SpecMissingFmt     = "no spec found for custom package %q"
	SpecAvailableFmt   = "available specs: %s"
	SpecNoRemoveFmt    = "no remove command defined for %q; the package may need to be removed manually"
	SpecPlatformFmt    = "custom package %q is not supported on this platform"
	SpecDependsLineFmt = "  Depends: %s\n"
)

// Tool settings (config.toml) messages.
const (
	SettingsReadFmt  = "read settings %s: %w"
	SettingsParseFmt = "invalid settings %s: %w"
	// SettingsUnknownKeysFmt reports keys the settings schema does not define.
	SettingsUnknownKeysFmt = "unrecognized settings in %s: %v"
)
