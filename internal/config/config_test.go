package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func TestNewResolvesPathsUnderInstallDir(t *testing.T) {
	dir := t.TempDir()
	cfg := New(dir)

	require.Equal(t, dir, cfg.InstallDir)
	require.Equal(t, Version, cfg.Version)
	require.Equal(t, "orbit-studio-"+Version+".jar", cfg.ArtifactName)
	require.Equal(t, filepath.Join(dir, cfg.ArtifactName), cfg.ArtifactPath)
	require.Equal(t, filepath.Join(dir, LauncherName), cfg.LauncherPath)
	require.Equal(t, filepath.Join(dir, LoaderName), cfg.LoaderPath)
	require.Equal(t, filepath.Join(dir, IconName), cfg.IconPath)
}

func TestNewDownloadURLNamesTheArtifact(t *testing.T) {
	cfg := New(t.TempDir())
	require.True(t, strings.HasPrefix(cfg.DownloadURL, "https://"))
	require.True(t, strings.HasSuffix(cfg.DownloadURL, cfg.ArtifactName))
}

func TestNewDesktopEntryUnderXDGDataHome(t *testing.T) {
	cfg := New(t.TempDir())
	require.Equal(t, filepath.Join(xdg.DataHome, "applications", DesktopEntryName), cfg.DesktopEntryPath)
}

func TestNewSymlinkInSharedBin(t *testing.T) {
	cfg := New(t.TempDir())
	require.Equal(t, "/usr/local/bin/orbit", cfg.SymlinkPath)
}
