package messages

// Command metadata and shared prompt text.
const (
	// RootUse is the root command name.
	RootUse = "orbitup"
	// RootShort is the root command summary.
	RootShort = "Manage the Orbit Studio desktop installation"

	InstallUse     = "install"
	InstallShort   = "Install Orbit Studio into the current directory"
	UpgradeUse     = "upgrade"
	UpgradeShort   = "Re-download the Orbit Studio artifact and refresh the launcher"
	UninstallUse   = "uninstall"
	UninstallShort = "Remove the artifact, launcher, menu entry, and bin link"
	RegisterUse    = "register"
	RegisterShort  = "Launch the activation helper"

	// VersionTemplate is the cobra --version output template.
	VersionTemplate  = "orbitup {{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// PromptYesDefaultFmt renders a yes/no prompt defaulting to yes.
	PromptYesDefaultFmt = "%s [Y/n]: "
	// PromptNoDefaultFmt renders a yes/no prompt defaulting to no.
	PromptNoDefaultFmt   = "%s [y/N]: "
	PromptRetryYesNo     = "Please answer 'y' or 'n'."
	PromptInvalidRespFmt = "invalid response %q"
	PromptWriteFailedFmt = "failed to write prompt: %w"
)
