package lifecycle

import (
	"os"

	"github.com/orbit-tools/orbitup/internal/fsutil"
)

// System abstracts the filesystem operations the lifecycle manager performs
// directly. This interface is intentionally package-local; collaborators
// define their own System interfaces with operations specific to their needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	RemoveIfPresent(name string) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// RemoveIfPresent removes the named file, treating a missing file as success.
func (RealSystem) RemoveIfPresent(name string) error { return fsutil.RemoveIfPresent(name) }

// WriteFileAtomic writes data to a file atomically by writing to a temp file and renaming.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}
