package messages

// Privileged operation messages.
const (
	PrivEscalationMissing = "this operation needs root or a working sudo; install sudo or re-run as root"
	PrivSymlinkFailedFmt  = "symlink %s -> %s exited with status %d"
	PrivUnlinkFailedFmt   = "removing %s exited with status %d"
	PrivRunToolFailedFmt  = "failed to run %s: %w"
)
