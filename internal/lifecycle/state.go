package lifecycle

import "github.com/orbit-tools/orbitup/internal/config"

// State is the installation state derived from the filesystem. The three
// facts are independent but normally move together. It is recomputed at the
// start of every operation and never cached across invocations.
type State struct {
	// Installed reports that the versioned artifact is present.
	Installed bool
	// LauncherReady reports that the launcher script exists and is executable.
	LauncherReady bool
	// ShortcutPresent reports that the desktop-entry file exists.
	ShortcutPresent bool
}

// Inspect derives the current State for cfg from the filesystem.
func Inspect(sys System, cfg config.Config) State {
	var s State
	if _, err := sys.Stat(cfg.ArtifactPath); err == nil {
		s.Installed = true
	}
	if info, err := sys.Stat(cfg.LauncherPath); err == nil && info.Mode().Perm()&0o111 != 0 {
		s.LauncherReady = true
	}
	if _, err := sys.Stat(cfg.DesktopEntryPath); err == nil {
		s.ShortcutPresent = true
	}
	return s
}
