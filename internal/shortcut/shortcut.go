// Package shortcut manages the applications-menu desktop entry for the
// installed launcher.
package shortcut

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/fsutil"
	"github.com/orbit-tools/orbitup/internal/messages"
)

// Entry describes one desktop-entry descriptor.
type Entry struct {
	Name       string
	Comment    string
	ExecPath   string
	IconPath   string
	Categories string
}

// System abstracts filesystem operations needed by the registrar.
// This interface is intentionally package-local so tests can run without
// touching the real applications directory.
type System interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	RemoveIfPresent(name string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

// WriteFileAtomic writes data to a file atomically.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// RemoveIfPresent removes the named file, treating a missing file as success.
func (RealSystem) RemoveIfPresent(name string) error { return fsutil.RemoveIfPresent(name) }

// Registrar writes and removes the desktop entry and refreshes the desktop
// menu database.
type Registrar struct {
	EntryPath string
	Runner    execx.Runner
	Sys       System
	Out       io.Writer
}

// Register renders the descriptor for entry and writes it to EntryPath.
// A missing icon file degrades to an entry without an Icon key rather than a
// descriptor pointing at a nonexistent file.
func (r Registrar) Register(entry Entry) error {
	if err := r.Sys.MkdirAll(filepath.Dir(r.EntryPath), 0o755); err != nil {
		return fmt.Errorf(messages.ShortcutCreateDirFailedFmt, filepath.Dir(r.EntryPath), err)
	}
	data := render(entry, r.iconPresent(entry.IconPath))
	if err := r.Sys.WriteFileAtomic(r.EntryPath, data, 0o644); err != nil {
		return fmt.Errorf(messages.ShortcutWriteFailedFmt, r.EntryPath, err)
	}
	return nil
}

// Remove deletes the desktop entry, treating a missing entry as success.
func (r Registrar) Remove() error {
	if err := r.Sys.RemoveIfPresent(r.EntryPath); err != nil {
		return fmt.Errorf(messages.ShortcutRemoveFailedFmt, r.EntryPath, err)
	}
	return nil
}

// Refresh asks the desktop environment to rescan the applications directory.
// A missing update-desktop-database tool is not an error; some environments
// rescan on their own.
func (r Registrar) Refresh() error {
	if _, err := r.Runner.LookPath("update-desktop-database"); err != nil {
		return nil
	}
	res, err := r.Runner.Run("update-desktop-database", filepath.Dir(r.EntryPath))
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf(messages.ShortcutRefreshFailedFmt, res.ExitCode)
	}
	return nil
}

func (r Registrar) iconPresent(iconPath string) bool {
	if iconPath == "" {
		return false
	}
	if _, err := r.Sys.Stat(iconPath); err != nil {
		_, _ = fmt.Fprintf(r.Out, messages.ShortcutIconMissingFmt, iconPath)
		return false
	}
	return true
}

func render(entry Entry, withIcon bool) []byte {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + entry.Name + "\n")
	if entry.Comment != "" {
		b.WriteString("Comment=" + entry.Comment + "\n")
	}
	b.WriteString("Exec=" + entry.ExecPath + "\n")
	if withIcon {
		b.WriteString("Icon=" + entry.IconPath + "\n")
	}
	b.WriteString("Terminal=false\n")
	if entry.Categories != "" {
		b.WriteString("Categories=" + entry.Categories + "\n")
	}
	return []byte(b.String())
}
