// Package launcher generates the executable script that starts Orbit Studio
// with its fixed runtime flags and the companion instrumentation agent.
package launcher

import (
	"fmt"
	"os"

	"github.com/orbit-tools/orbitup/internal/config"
	"github.com/orbit-tools/orbitup/internal/fsutil"
	"github.com/orbit-tools/orbitup/internal/messages"
)

// System is the minimal interface needed for launcher generation.
type System interface {
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// WriteFileAtomic writes data to path atomically.
func (RealSystem) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(path, data, perm)
}

// Render produces the launcher script for cfg. Absolute paths are baked in so
// the script keeps working when invoked through the shared-bin symlink, and
// all caller-supplied arguments are forwarded to the application.
func Render(cfg config.Config) []byte {
	script := fmt.Sprintf(`#!/bin/sh
# Generated by orbitup; rewritten on install and upgrade.
cd %q || exit 1
exec java -Xmx2048m -javaagent:%q -jar %q "$@"
`, cfg.InstallDir, cfg.LoaderPath, cfg.ArtifactPath)
	return []byte(script)
}

// Write renders the launcher and writes it executable. Safe to re-run; the
// content depends only on cfg.
func Write(sys System, cfg config.Config) error {
	if err := sys.WriteFileAtomic(cfg.LauncherPath, Render(cfg), 0o755); err != nil {
		return fmt.Errorf(messages.WriteLauncherFailedFmt, cfg.LauncherPath, err)
	}
	return nil
}
