package messages

// Lifecycle step names used in failure diagnostics.
const (
	StepDependencies = "dependency resolution"
	StepFetch        = "artifact download"
	StepLauncher     = "launcher generation"
)

// Lifecycle operation messages.
const (
	InstallExistingFmt     = "Found an existing %s in %s.\n"
	InstallReinstallPrompt = "Reinstall and overwrite the current installation?"
	InstallDeclined        = "Keeping the existing installation; nothing was changed."
	InstallStepFailedFmt   = "%s failed: %w"
	InstallDoneFmt         = "Orbit Studio %s installed in %s.\nStart it with `%s` or from the applications menu.\n"
	InstallLinkedFmt       = "Linked %s -> %s\n"

	WarnSymlinkFailedFmt   = "Warning: could not link the launcher into %s: %v\n"
	WarnShortcutWriteFmt   = "Warning: could not register the menu entry: %v\n"
	WarnShortcutRefreshFmt = "Warning: could not refresh the desktop menu database: %v\n"
	WarnShortcutRemoveFmt  = "Warning: could not remove the menu entry: %v\n"
	WarnSymlinkRemoveFmt   = "Warning: could not remove the bin link %s: %v\n"

	RemoveFileFailedFmt    = "failed to remove %s: %w"
	WriteLauncherFailedFmt = "failed to write launcher %s: %w"

	AssetMissingFmt = "required asset %s is missing; run `orbitup install` first"

	UpgradeDoneFmt   = "Orbit Studio %s re-downloaded and the launcher refreshed.\n"
	UninstallDoneFmt = "Orbit Studio removed from %s.\n"

	RegisterSpawnFailedFmt = "failed to start the activation helper: %w"
	RegisterStarted        = "Activation helper started; complete registration in its window."
)
