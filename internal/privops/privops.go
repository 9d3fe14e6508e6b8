// Package privops performs the few operations that need elevated rights:
// maintaining the shared-bin launcher link and installing system packages.
// Commands run through sudo unless the process is already root.
package privops

import (
	"fmt"
	"os"

	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/messages"
)

// Ops is the privileged-operation capability handed to the lifecycle manager
// and the dependency resolver. Each method can fail independently of the
// unprivileged parts of an operation; callers decide which failures are fatal.
type Ops struct {
	Runner execx.Runner
	// Geteuid is a seam for tests; nil defaults to os.Geteuid.
	Geteuid func() int
}

func (o Ops) euid() int {
	if o.Geteuid != nil {
		return o.Geteuid()
	}
	return os.Geteuid()
}

// Elevated reports whether the process already runs as root.
func (o Ops) Elevated() bool {
	return o.euid() == 0
}

// EnsureEscalation verifies privileged steps can run at all: either the
// process is root or sudo is on PATH. It mutates nothing, so operations can
// call it before touching the filesystem and fail fast with a clear
// diagnostic instead of stopping half-way through.
func (o Ops) EnsureEscalation() error {
	if o.Elevated() {
		return nil
	}
	if _, err := o.Runner.LookPath("sudo"); err != nil {
		return fmt.Errorf(messages.PrivEscalationMissing)
	}
	return nil
}

// Run executes name with args elevated, attached to the operator's terminal
// so sudo can prompt for a password.
func (o Ops) Run(name string, args ...string) (execx.Result, error) {
	if o.Elevated() {
		return o.Runner.RunInteractive(name, args...)
	}
	return o.Runner.RunInteractive("sudo", append([]string{name}, args...)...)
}

// Symlink force-creates link pointing at target.
func (o Ops) Symlink(target string, link string) error {
	res, err := o.Run("ln", "-sf", target, link)
	if err != nil {
		return fmt.Errorf(messages.PrivRunToolFailedFmt, "ln", err)
	}
	if !res.Ok() {
		return fmt.Errorf(messages.PrivSymlinkFailedFmt, link, target, res.ExitCode)
	}
	return nil
}

// RemoveSymlink deletes link, treating a missing link as success.
func (o Ops) RemoveSymlink(link string) error {
	res, err := o.Run("rm", "-f", link)
	if err != nil {
		return fmt.Errorf(messages.PrivRunToolFailedFmt, "rm", err)
	}
	if !res.Ok() {
		return fmt.Errorf(messages.PrivUnlinkFailedFmt, link, res.ExitCode)
	}
	return nil
}
