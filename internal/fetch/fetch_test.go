package fetch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbit-tools/orbitup/internal/execx"
)

type fakeRunner struct {
	onPath   map[string]bool
	calls    [][]string
	exitCode int
	startErr error
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.onPath[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("not found")
}

func (f *fakeRunner) Run(name string, args ...string) (execx.Result, error) {
	return f.RunInteractive(name, args...)
}

func (f *fakeRunner) RunInteractive(name string, args ...string) (execx.Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.startErr != nil {
		return execx.Result{ExitCode: -1}, f.startErr
	}
	return execx.Result{ExitCode: f.exitCode}, nil
}

func (f *fakeRunner) Start(name string, args ...string) error { return nil }

const (
	testURL  = "https://downloads.orbitstudio.dev/release/orbit-studio-2024.3.1.jar"
	testDest = "/opt/orbit/orbit-studio-2024.3.1.jar"
)

func TestFetchPrefersAcceleratedDownloader(t *testing.T) {
	r := &fakeRunner{onPath: map[string]bool{"axel": true}}
	f := Fetcher{Runner: r, Out: &bytes.Buffer{}}

	require.NoError(t, f.Fetch(testURL, testDest, false))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"axel", "-n", "8", "-o", testDest, testURL}, r.calls[0])
}

func TestFetchUsesWgetWhenAcceleratedMissing(t *testing.T) {
	r := &fakeRunner{}
	f := Fetcher{Runner: r, Out: &bytes.Buffer{}}

	require.NoError(t, f.Fetch(testURL, testDest, false))
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"wget", "-O", testDest, testURL}, r.calls[0])
}

func TestFetchHonorsFallbackFlagOverInstalledAccelerated(t *testing.T) {
	r := &fakeRunner{onPath: map[string]bool{"axel": true}}
	f := Fetcher{Runner: r, Out: &bytes.Buffer{}}

	require.NoError(t, f.Fetch(testURL, testDest, true))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "wget", r.calls[0][0])
}

func TestFetchNonZeroExitReturnsFetchError(t *testing.T) {
	r := &fakeRunner{exitCode: 8}
	f := Fetcher{Runner: r, Out: &bytes.Buffer{}}

	err := f.Fetch(testURL, testDest, false)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, testURL, fetchErr.URL)
	assert.Equal(t, testDest, fetchErr.Dest)
	assert.Equal(t, 8, fetchErr.ExitCode)
	assert.Contains(t, err.Error(), "manually")
	assert.Contains(t, err.Error(), testDest)
}

func TestFetchStartFailureWrapsCause(t *testing.T) {
	boom := errors.New("exec format error")
	r := &fakeRunner{startErr: boom}
	f := Fetcher{Runner: r, Out: &bytes.Buffer{}}

	err := f.Fetch(testURL, testDest, true)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.ErrorIs(t, err, boom)
}

func TestFetchReportsChosenTool(t *testing.T) {
	var out bytes.Buffer
	r := &fakeRunner{onPath: map[string]bool{"axel": true}}
	require.NoError(t, Fetcher{Runner: r, Out: &out}.Fetch(testURL, testDest, false))
	assert.Contains(t, out.String(), "axel")
	assert.Contains(t, out.String(), testURL)
}
