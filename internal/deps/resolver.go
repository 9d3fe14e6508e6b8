// Package deps ensures the system packages Orbit Studio needs are present
// before anything is downloaded or written.
package deps

import (
	"errors"
	"fmt"
	"io"

	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/messages"
	"github.com/orbit-tools/orbitup/internal/prompt"
)

// Package pairs a package-manager name with the binary whose presence on PATH
// marks it as already installed.
type Package struct {
	Name  string
	Probe string
}

// Required packages. The launcher needs a Java runtime and the fetcher needs
// at least the single-stream downloader.
var Required = []Package{
	{Name: "default-jre", Probe: "java"},
	{Name: "wget", Probe: "wget"},
}

// Accelerated is the optional parallel-connection downloader. Its absence is
// never fatal; the fetcher falls back to wget.
var Accelerated = Package{Name: "axel", Probe: "axel"}

type helper struct {
	name        string
	installArgs []string
}

// helperManagers can install the optional package, tried in priority order.
// Required packages go through apt-get only; cross-distribution package
// management is out of scope.
var helperManagers = []helper{
	{name: "apt-get", installArgs: []string{"install", "-y"}},
	{name: "dnf", installArgs: []string{"install", "-y"}},
	{name: "pacman", installArgs: []string{"-S", "--noconfirm"}},
}

// Resolution carries the facts downstream fetch logic must honor.
type Resolution struct {
	// UseFallbackDownloader is set when the accelerated downloader is
	// unavailable and the operator explicitly chose to continue without it.
	UseFallbackDownloader bool
}

// DependencyError reports a required package that could not be installed.
type DependencyError struct {
	Package string
	Err     error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf(messages.DepsErrorFmt, e.Package, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// ErrFallbackDeclined aborts resolution when the operator refuses to continue
// without the accelerated downloader.
var ErrFallbackDeclined = errors.New(messages.DepsFallbackDeclined)

// Privileged runs a command with elevated rights.
type Privileged interface {
	Run(name string, args ...string) (execx.Result, error)
}

// Resolver checks and installs system packages.
type Resolver struct {
	Runner  execx.Runner
	Priv    Privileged
	Confirm prompt.Confirmer
	Out     io.Writer
}

// Resolve ensures every required package is present, installing missing ones
// through apt-get, then tries to provide the accelerated downloader. The
// returned Resolution tells the fetcher whether to use the fallback tool.
func (r Resolver) Resolve() (Resolution, error) {
	for _, pkg := range Required {
		_, _ = fmt.Fprintf(r.Out, messages.DepsCheckingFmt, pkg.Probe)
		if r.present(pkg) {
			_, _ = fmt.Fprintf(r.Out, messages.DepsPresentFmt, pkg.Probe)
			continue
		}
		if err := r.installRequired(pkg); err != nil {
			return Resolution{}, err
		}
	}
	return r.resolveAccelerated()
}

func (r Resolver) present(pkg Package) bool {
	_, err := r.Runner.LookPath(pkg.Probe)
	return err == nil
}

func (r Resolver) installRequired(pkg Package) error {
	if _, err := r.Runner.LookPath("apt-get"); err != nil {
		return &DependencyError{Package: pkg.Name, Err: fmt.Errorf(messages.DepsManagerMissingFmt, "apt-get", err)}
	}
	_, _ = fmt.Fprintf(r.Out, messages.DepsInstallingFmt, pkg.Name, "apt-get")
	res, err := r.Priv.Run("apt-get", "install", "-y", pkg.Name)
	if err != nil {
		return &DependencyError{Package: pkg.Name, Err: err}
	}
	if !res.Ok() {
		return &DependencyError{Package: pkg.Name, Err: fmt.Errorf(messages.DepsExitStatusFmt, "apt-get", res.ExitCode)}
	}
	return nil
}

// resolveAccelerated tries each helper manager in order and falls back to an
// operator decision when none can provide the package. Continuing without the
// accelerated downloader requires an explicit non-empty yes.
func (r Resolver) resolveAccelerated() (Resolution, error) {
	_, _ = fmt.Fprintf(r.Out, messages.DepsCheckingFmt, Accelerated.Probe)
	if r.present(Accelerated) {
		_, _ = fmt.Fprintf(r.Out, messages.DepsPresentFmt, Accelerated.Probe)
		return Resolution{}, nil
	}
	if r.installOptional() && r.present(Accelerated) {
		return Resolution{}, nil
	}
	cont, err := r.Confirm.Confirm(messages.DepsFallbackPrompt, false)
	if err != nil {
		return Resolution{}, err
	}
	if !cont {
		return Resolution{}, ErrFallbackDeclined
	}
	_, _ = fmt.Fprint(r.Out, messages.DepsFallbackNotice)
	return Resolution{UseFallbackDownloader: true}, nil
}

func (r Resolver) installOptional() bool {
	for _, h := range helperManagers {
		if _, err := r.Runner.LookPath(h.name); err != nil {
			continue
		}
		_, _ = fmt.Fprintf(r.Out, messages.DepsInstallingFmt, Accelerated.Name, h.name)
		res, err := r.Priv.Run(h.name, append(h.installArgs, Accelerated.Name)...)
		if err == nil && res.Ok() {
			return true
		}
		if err != nil {
			_, _ = fmt.Fprintf(r.Out, messages.DepsOptionalFailedFmt, Accelerated.Name, err)
		} else {
			_, _ = fmt.Fprintf(r.Out, messages.DepsOptionalFailedFmt, Accelerated.Name, fmt.Sprintf(messages.DepsExitStatusFmt, h.name, res.ExitCode))
		}
		return false
	}
	_, _ = fmt.Fprintln(r.Out, messages.DepsOptionalNoHelper)
	return false
}
