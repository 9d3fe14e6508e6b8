package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomicWritesContentAndPerm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "launcher")

	require.NoError(t, WriteFileAtomic(path, []byte("#!/bin/sh\n"), 0o755))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "#!/bin/sh\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestWriteFileAtomicOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entry.desktop")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFileAtomic(filepath.Join(dir, "f"), []byte("x"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "f", entries[0].Name())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	dir := t.TempDir()
	err := WriteFileAtomic(filepath.Join(dir, "missing", "f"), []byte("x"), 0o644)
	require.Error(t, err)
}

func TestRemoveIfPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.jar")
	require.NoError(t, os.WriteFile(path, []byte("jar"), 0o644))

	require.NoError(t, RemoveIfPresent(path))
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// A second removal of the now-missing file still succeeds.
	require.NoError(t, RemoveIfPresent(path))
}
