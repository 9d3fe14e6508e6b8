// Package execx runs external tools and reports their outcome as plain data.
// Callers branch on the returned Result; the error channel is reserved for
// failures to start a tool at all.
package execx

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result describes a finished external tool invocation.
type Result struct {
	// ExitCode is the tool's exit status; zero means success.
	ExitCode int
	// Output holds combined stdout/stderr for captured runs. Interactive
	// runs leave it empty because the tool wrote to the terminal directly.
	Output string
}

// Ok reports whether the invocation exited successfully.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Runner abstracts external tool invocation.
// This interface is intentionally narrow so packages can substitute fakes in
// tests without shelling out.
type Runner interface {
	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
	// Run executes the tool with captured combined output.
	Run(name string, args ...string) (Result, error)
	// RunInteractive executes the tool wired to the operator's terminal.
	RunInteractive(name string, args ...string) (Result, error)
	// Start launches the tool without waiting for it to finish.
	Start(name string, args ...string) error
}

// RealRunner implements Runner with os/exec.
type RealRunner struct {
	// Stdin, Stdout, and Stderr carry interactive tool I/O. Nil values
	// default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath reports where name resolves on PATH.
func (r RealRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the tool and captures its combined output.
func (r RealRunner) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	out, err := cmd.CombinedOutput()
	return resultFrom(string(out), err)
}

// RunInteractive executes the tool attached to the operator's terminal so
// package-manager prompts and downloader progress render normally.
func (r RealRunner) RunInteractive(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return resultFrom("", cmd.Run())
}

// Start launches the tool and returns once it is running. The spawned
// process is released so it can outlive the current one.
func (r RealRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func (r RealRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r RealRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r RealRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

func resultFrom(output string, err error) (Result, error) {
	if err == nil {
		return Result{Output: output}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = 1
		}
		return Result{ExitCode: code, Output: output}, nil
	}
	return Result{ExitCode: -1, Output: output}, err
}
