package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WaitTimeout and WaitTick bound polling loops that watch for side effects of
// spawned processes.
const (
	WaitTimeout = 5 * time.Second
	WaitTick    = 10 * time.Millisecond
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	WriteStubScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubScript writes an executable shell stub with the provided body.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubRecordingArgs writes an executable shell stub that appends its
// arguments to logPath, one invocation per line, and exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubRecordingArgs(t *testing.T, dir string, name string, logPath string) {
	t.Helper()
	WriteStubScript(t, dir, name, fmt.Sprintf("echo \"$@\" >> %q\nexit 0\n", logPath))
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
