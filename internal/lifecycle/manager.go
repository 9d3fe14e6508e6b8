// Package lifecycle drives the install, upgrade, uninstall, and register
// operations over the on-disk installation state. Everything with side
// effects outside the install directory goes through injected collaborators.
package lifecycle

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/orbit-tools/orbitup/internal/config"
	"github.com/orbit-tools/orbitup/internal/deps"
	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/launcher"
	"github.com/orbit-tools/orbitup/internal/messages"
	"github.com/orbit-tools/orbitup/internal/prompt"
	"github.com/orbit-tools/orbitup/internal/shortcut"
)

// DependencyResolver ensures required system packages are present and reports
// whether the fetcher must use the fallback downloader.
type DependencyResolver interface {
	Resolve() (deps.Resolution, error)
}

// ArtifactFetcher retrieves the versioned artifact into a target path.
type ArtifactFetcher interface {
	Fetch(url string, dest string, useFallback bool) error
}

// ShortcutRegistrar maintains the applications-menu entry.
type ShortcutRegistrar interface {
	Register(entry shortcut.Entry) error
	Remove() error
	Refresh() error
}

// PrivilegedOps executes the operations that need elevated rights. Methods
// fail independently; the manager decides which failures are fatal.
type PrivilegedOps interface {
	EnsureEscalation() error
	Symlink(target string, link string) error
	RemoveSymlink(link string) error
}

// Manager drives the four lifecycle operations. All collaborators must be
// set; Out and Errw receive the human-readable diagnostic stream.
type Manager struct {
	Config    config.Config
	Deps      DependencyResolver
	Fetcher   ArtifactFetcher
	Shortcuts ShortcutRegistrar
	Priv      PrivilegedOps
	Confirm   prompt.Confirmer
	Sys       System
	Runner    execx.Runner
	Out       io.Writer
	Errw      io.Writer
}

var warnColor = color.New(color.FgYellow)

func (m *Manager) warnf(format string, args ...any) {
	_, _ = warnColor.Fprintf(m.Errw, format, args...)
}

// Install performs a fresh install, or a reinstall after confirmation when
// the artifact is already present. Dependency resolution, the download, and
// the launcher are hard gates; the shared-bin symlink, the menu entry, and the
// menu-database refresh are best-effort.
func (m *Manager) Install() error {
	state := Inspect(m.Sys, m.Config)
	if state.Installed {
		_, _ = fmt.Fprintf(m.Out, messages.InstallExistingFmt, m.Config.ArtifactName, m.Config.InstallDir)
		ok, err := m.Confirm.Confirm(messages.InstallReinstallPrompt, false)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(m.Out, messages.InstallDeclined)
			return ErrDeclined
		}
	}

	// Package installs may need elevation; verify it before the first
	// mutation so a failure cannot leave partial state behind.
	if err := m.Priv.EnsureEscalation(); err != nil {
		return err
	}

	if state.Installed {
		if err := m.uninstallCore(); err != nil {
			return err
		}
	}

	resolution, err := m.Deps.Resolve()
	if err != nil {
		return fmt.Errorf(messages.InstallStepFailedFmt, messages.StepDependencies, err)
	}
	if err := m.Fetcher.Fetch(m.Config.DownloadURL, m.Config.ArtifactPath, resolution.UseFallbackDownloader); err != nil {
		return fmt.Errorf(messages.InstallStepFailedFmt, messages.StepFetch, err)
	}
	if err := launcher.Write(m.Sys, m.Config); err != nil {
		return fmt.Errorf(messages.InstallStepFailedFmt, messages.StepLauncher, err)
	}

	if err := m.Priv.Symlink(m.Config.LauncherPath, m.Config.SymlinkPath); err != nil {
		m.warnf(messages.WarnSymlinkFailedFmt, filepath.Dir(m.Config.SymlinkPath), err)
	} else {
		_, _ = fmt.Fprintf(m.Out, messages.InstallLinkedFmt, m.Config.SymlinkPath, m.Config.LauncherPath)
	}

	if err := m.Shortcuts.Register(m.entry()); err != nil {
		m.warnf(messages.WarnShortcutWriteFmt, err)
	} else if err := m.Shortcuts.Refresh(); err != nil {
		m.warnf(messages.WarnShortcutRefreshFmt, err)
	}

	_, _ = fmt.Fprintf(m.Out, messages.InstallDoneFmt, m.Config.Version, m.Config.InstallDir, m.Config.LauncherName)
	return nil
}

// Upgrade re-downloads the pinned artifact and rewrites the launcher. It does
// not re-run dependency resolution or menu registration. The loader and icon
// must already exist; they are repository assets install never fetches, so
// their absence means install has not run here.
func (m *Manager) Upgrade() error {
	for _, asset := range []string{m.Config.LoaderPath, m.Config.IconPath} {
		if _, err := m.Sys.Stat(asset); err != nil {
			return &PreconditionError{Path: asset}
		}
	}
	if err := m.removeIfPresent(m.Config.ArtifactPath); err != nil {
		return err
	}
	if err := m.Fetcher.Fetch(m.Config.DownloadURL, m.Config.ArtifactPath, false); err != nil {
		return fmt.Errorf(messages.InstallStepFailedFmt, messages.StepFetch, err)
	}
	if err := launcher.Write(m.Sys, m.Config); err != nil {
		return fmt.Errorf(messages.InstallStepFailedFmt, messages.StepLauncher, err)
	}
	_, _ = fmt.Fprintf(m.Out, messages.UpgradeDoneFmt, m.Config.Version)
	return nil
}

// Uninstall removes everything install created: the artifact, the launcher,
// the menu entry, and the bin link. The loader and icon stay; they are shared
// repository assets. Running it with nothing installed succeeds.
func (m *Manager) Uninstall() error {
	if err := m.uninstallCore(); err != nil {
		return err
	}
	if err := m.Shortcuts.Remove(); err != nil {
		m.warnf(messages.WarnShortcutRemoveFmt, err)
	}
	if err := m.Priv.RemoveSymlink(m.Config.SymlinkPath); err != nil {
		m.warnf(messages.WarnSymlinkRemoveFmt, m.Config.SymlinkPath, err)
	}
	if err := m.Shortcuts.Refresh(); err != nil {
		m.warnf(messages.WarnShortcutRefreshFmt, err)
	}
	_, _ = fmt.Fprintf(m.Out, messages.UninstallDoneFmt, m.Config.InstallDir)
	return nil
}

// Register hands off to the vendor's activation helper. The spawn is
// fire-and-forget: responsibility ends once the process starts, and the
// helper's own exit status is its own concern.
func (m *Manager) Register() error {
	if _, err := m.Sys.Stat(m.Config.LoaderPath); err != nil {
		return &PreconditionError{Path: m.Config.LoaderPath}
	}
	if err := m.Runner.Start("java", "-jar", m.Config.LoaderPath); err != nil {
		return fmt.Errorf(messages.RegisterSpawnFailedFmt, err)
	}
	_, _ = fmt.Fprintln(m.Out, messages.RegisterStarted)
	return nil
}

// uninstallCore deletes the lifecycle-managed files inside the install
// directory: the versioned artifact and the launcher. The loader and icon are
// never touched.
func (m *Manager) uninstallCore() error {
	if err := m.removeIfPresent(m.Config.ArtifactPath); err != nil {
		return err
	}
	return m.removeIfPresent(m.Config.LauncherPath)
}

func (m *Manager) removeIfPresent(path string) error {
	if err := m.Sys.RemoveIfPresent(path); err != nil {
		return fmt.Errorf(messages.RemoveFileFailedFmt, path, err)
	}
	return nil
}

func (m *Manager) entry() shortcut.Entry {
	return shortcut.Entry{
		Name:       config.AppDisplayName,
		Comment:    config.AppComment,
		ExecPath:   m.Config.LauncherPath,
		IconPath:   m.Config.IconPath,
		Categories: config.AppCategories,
	}
}
