// Package config resolves the fixed paths and identifiers the lifecycle
// operations work against.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Version is the Orbit Studio release this tool installs. Upgrade re-downloads
// the same release; resolving a newer release identifier would need the vendor
// release metadata endpoint and is out of scope.
const Version = "2024.3.1"

const (
	artifactNameFmt = "orbit-studio-%s.jar"
	downloadURLFmt  = "https://downloads.orbitstudio.dev/release/%s"

	// LauncherName is both the generated script name and the bin link name.
	LauncherName = "orbit"
	// LoaderName is the companion instrumentation agent shipped with the
	// repository; it is never fetched or deleted by this tool.
	LoaderName = "loader.jar"
	// IconName is the pre-existing icon asset next to the loader.
	IconName = "orbit.png"
	// DesktopEntryName is the applications-menu descriptor file name.
	DesktopEntryName = "orbit-studio.desktop"

	sharedBinDir = "/usr/local/bin"
)

// Desktop-entry values for the applications menu.
const (
	AppDisplayName = "Orbit Studio"
	AppComment     = "Orbit Studio desktop application"
	AppCategories  = "Development;"
)

// Config is the immutable set of resolved paths and identifiers for one
// invocation. Build it once with New; nothing mutates it afterwards.
type Config struct {
	InstallDir       string
	Version          string
	ArtifactName     string
	ArtifactPath     string
	DownloadURL      string
	LauncherName     string
	LauncherPath     string
	LoaderPath       string
	IconPath         string
	DesktopEntryPath string
	SymlinkPath      string
}

// New builds the configuration for an install rooted at installDir, normally
// the invocation working directory.
func New(installDir string) Config {
	artifact := fmt.Sprintf(artifactNameFmt, Version)
	return Config{
		InstallDir:       installDir,
		Version:          Version,
		ArtifactName:     artifact,
		ArtifactPath:     filepath.Join(installDir, artifact),
		DownloadURL:      fmt.Sprintf(downloadURLFmt, artifact),
		LauncherName:     LauncherName,
		LauncherPath:     filepath.Join(installDir, LauncherName),
		LoaderPath:       filepath.Join(installDir, LoaderName),
		IconPath:         filepath.Join(installDir, IconName),
		DesktopEntryPath: filepath.Join(xdg.DataHome, "applications", DesktopEntryName),
		SymlinkPath:      filepath.Join(sharedBinDir, LauncherName),
	}
}
