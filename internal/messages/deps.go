package messages

// Dependency resolution messages.
const (
	DepsCheckingFmt       = "Checking for %s...\n"
	DepsPresentFmt        = "Found %s.\n"
	DepsInstallingFmt     = "Installing %s with %s...\n"
	DepsErrorFmt          = "dependency %s: %v"
	DepsExitStatusFmt     = "%s exited with status %d"
	DepsManagerMissingFmt = "package manager %s is not available: %w"
	DepsOptionalNoHelper  = "No package manager is available to install the accelerated downloader."
	DepsOptionalFailedFmt = "Could not install the accelerated downloader %s: %v\n"
	DepsFallbackPrompt    = "Continue with the slower single-stream downloader?"
	DepsFallbackDeclined  = "aborted: accelerated downloader unavailable and fallback declined"
	DepsFallbackNotice    = "Continuing with the single-stream downloader.\n"
)
