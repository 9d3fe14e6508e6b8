package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orbit-tools/orbitup/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// execute runs the CLI command with the provided args and I/O streams.
func execute(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(normalizeArgs(args[1:]))
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI, mapping errors to process exit codes.
func runMain(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := executeFunc(args, stdin, stdout, stderr); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

var knownCommands = map[string]bool{
	messages.InstallUse:   true,
	messages.UpgradeUse:   true,
	messages.UninstallUse: true,
	messages.RegisterUse:  true,
	"help":                true,
	"completion":          true,
}

// normalizeArgs maps unrecognized commands to help so the usage text prints
// with a zero exit status instead of cobra's unknown-command error.
func normalizeArgs(args []string) []string {
	command := firstCommandArg(args)
	if command == "" || knownCommands[command] {
		return args
	}
	return []string{"help"}
}

// firstCommandArg extracts the first non-flag token from root command arguments.
func firstCommandArg(args []string) string {
	for idx, arg := range args {
		trimmed := strings.TrimSpace(arg)
		if trimmed == "" {
			continue
		}
		if trimmed == "--" {
			if idx+1 >= len(args) {
				return ""
			}
			return strings.TrimSpace(args[idx+1])
		}
		if strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return ""
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
