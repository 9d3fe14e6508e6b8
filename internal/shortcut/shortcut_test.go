package shortcut

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/testutil"
)

func newRegistrar(t *testing.T) (Registrar, string) {
	t.Helper()
	dir := t.TempDir()
	entryPath := filepath.Join(dir, "applications", "orbit-studio.desktop")
	return Registrar{
		EntryPath: entryPath,
		Runner:    execx.RealRunner{},
		Sys:       RealSystem{},
		Out:       &bytes.Buffer{},
	}, dir
}

func TestRegisterWritesDescriptorWithIcon(t *testing.T) {
	r, dir := newRegistrar(t)
	icon := filepath.Join(dir, "orbit.png")
	require.NoError(t, os.WriteFile(icon, []byte("png"), 0o644))

	entry := Entry{
		Name:       "Orbit Studio",
		Comment:    "Orbit Studio desktop application",
		ExecPath:   filepath.Join(dir, "orbit"),
		IconPath:   icon,
		Categories: "Development;",
	}
	require.NoError(t, r.Register(entry))

	data, err := os.ReadFile(r.EntryPath)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "[Desktop Entry]\n"))
	assert.Contains(t, content, "Name=Orbit Studio\n")
	assert.Contains(t, content, "Exec="+entry.ExecPath+"\n")
	assert.Contains(t, content, "Icon="+icon+"\n")
	assert.Contains(t, content, "Terminal=false\n")
	assert.Contains(t, content, "Categories=Development;\n")
}

func TestRegisterOmitsIconKeyWhenIconMissing(t *testing.T) {
	r, dir := newRegistrar(t)
	var out bytes.Buffer
	r.Out = &out

	entry := Entry{
		Name:     "Orbit Studio",
		ExecPath: filepath.Join(dir, "orbit"),
		IconPath: filepath.Join(dir, "orbit.png"),
	}
	require.NoError(t, r.Register(entry))

	data, err := os.ReadFile(r.EntryPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Icon=")
	assert.Contains(t, out.String(), "without one")
}

func TestRegisterCreatesApplicationsDir(t *testing.T) {
	r, _ := newRegistrar(t)
	require.NoError(t, r.Register(Entry{Name: "Orbit Studio", ExecPath: "/opt/orbit/orbit"}))

	info, err := os.Stat(filepath.Dir(r.EntryPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRemoveDeletesEntry(t *testing.T) {
	r, _ := newRegistrar(t)
	require.NoError(t, r.Register(Entry{Name: "Orbit Studio", ExecPath: "/opt/orbit/orbit"}))

	require.NoError(t, r.Remove())
	_, err := os.Stat(r.EntryPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingEntryIsSuccess(t *testing.T) {
	r, _ := newRegistrar(t)
	require.NoError(t, r.Remove())
	require.NoError(t, r.Remove())
}

func TestRefreshRunsUpdateDesktopDatabase(t *testing.T) {
	r, _ := newRegistrar(t)
	stubDir := t.TempDir()
	log := filepath.Join(stubDir, "calls.log")
	testutil.WriteStubRecordingArgs(t, stubDir, "update-desktop-database", log)
	t.Setenv("PATH", stubDir)

	require.NoError(t, r.Refresh())

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Dir(r.EntryPath))
}

func TestRefreshToolMissingIsSuccess(t *testing.T) {
	r, _ := newRegistrar(t)
	t.Setenv("PATH", t.TempDir())

	require.NoError(t, r.Refresh())
}

func TestRefreshReportsToolFailure(t *testing.T) {
	r, _ := newRegistrar(t)
	stubDir := t.TempDir()
	testutil.WriteStubWithExit(t, stubDir, "update-desktop-database", 1)
	t.Setenv("PATH", stubDir)

	err := r.Refresh()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 1")
}
