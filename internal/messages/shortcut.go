package messages

// Desktop shortcut messages.
const (
	ShortcutCreateDirFailedFmt = "failed to create applications directory %s: %w"
	ShortcutWriteFailedFmt     = "failed to write desktop entry %s: %w"
	ShortcutRemoveFailedFmt    = "failed to remove desktop entry %s: %w"
	ShortcutRefreshFailedFmt   = "update-desktop-database exited with status %d"
	ShortcutIconMissingFmt     = "Icon %s not found; registering the menu entry without one.\n"
)
