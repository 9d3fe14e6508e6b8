// Package fetch downloads the versioned Orbit Studio artifact using an
// accelerated parallel downloader when one is installed, falling back to a
// single-stream tool otherwise.
package fetch

import (
	"fmt"
	"io"

	"github.com/orbit-tools/orbitup/internal/execx"
	"github.com/orbit-tools/orbitup/internal/messages"
)

const (
	acceleratedTool        = "axel"
	acceleratedConnections = "8"
	fallbackTool           = "wget"
)

// FetchError reports a failed download with enough context for the operator
// to fetch the file manually.
type FetchError struct {
	URL      string
	Dest     string
	Tool     string
	ExitCode int
	// Err is set when the tool could not be started at all.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(messages.FetchToolErrFmt, e.URL, e.Tool, e.Err, e.Dest)
	}
	return fmt.Sprintf(messages.FetchFailedFmt, e.URL, e.Tool, e.ExitCode, e.Dest)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher shells out to a downloader attached to the operator's terminal so
// progress renders normally.
type Fetcher struct {
	Runner execx.Runner
	Out    io.Writer
}

// Fetch downloads url into dest. useFallback forces the single-stream tool
// even when the accelerated one is installed.
func (f Fetcher) Fetch(url string, dest string, useFallback bool) error {
	tool := fallbackTool
	args := []string{"-O", dest, url}
	if !useFallback {
		if _, err := f.Runner.LookPath(acceleratedTool); err == nil {
			tool = acceleratedTool
			args = []string{"-n", acceleratedConnections, "-o", dest, url}
		}
	}
	_, _ = fmt.Fprintf(f.Out, messages.FetchStartFmt, url)
	_, _ = fmt.Fprintf(f.Out, messages.FetchWithFmt, tool)
	res, err := f.Runner.RunInteractive(tool, args...)
	if err != nil {
		return &FetchError{URL: url, Dest: dest, Tool: tool, Err: err}
	}
	if !res.Ok() {
		return &FetchError{URL: url, Dest: dest, Tool: tool, ExitCode: res.ExitCode}
	}
	_, _ = fmt.Fprintf(f.Out, messages.FetchDoneFmt, dest)
	return nil
}
