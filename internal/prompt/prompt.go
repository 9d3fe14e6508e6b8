// Package prompt provides the yes/no confirmation capability injected into
// the lifecycle manager, with interactive and plain-stream implementations.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/orbit-tools/orbitup/internal/messages"
	"github.com/orbit-tools/orbitup/internal/terminal"
)

// Confirmer asks a yes/no question. defaultYes controls the result when the
// operator submits an empty response.
type Confirmer interface {
	Confirm(prompt string, defaultYes bool) (bool, error)
}

// Default returns the confirmer appropriate for the current terminal: a huh
// form when stdin/stdout are interactive, a plain reader loop otherwise.
func Default(in io.Reader, out io.Writer) Confirmer {
	if terminal.IsInteractive() {
		return HuhConfirmer{}
	}
	return NewReaderConfirmer(in, out)
}

// ReaderConfirmer reads y/n answers line by line, prompting on out. It owns a
// single buffered reader over the input stream so answers piped ahead of time
// survive across consecutive prompts within one invocation.
type ReaderConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewReaderConfirmer returns a ReaderConfirmer over in and out.
func NewReaderConfirmer(in io.Reader, out io.Writer) *ReaderConfirmer {
	return &ReaderConfirmer{reader: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question and returns the operator's choice or an error.
func (c *ReaderConfirmer) Confirm(prompt string, defaultYes bool) (bool, error) {
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if _, err := fmt.Fprintf(c.out, format, prompt); err != nil {
			return false, fmt.Errorf(messages.PromptWriteFailedFmt, err)
		}
		line, err := c.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidRespFmt, response)
		}
		if _, err := fmt.Fprintln(c.out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}

// HuhConfirmer renders confirmations as a charmbracelet/huh form. Only use it
// on interactive terminals.
type HuhConfirmer struct{}

// runFormFunc is a seam for tests.
var runFormFunc = func(form *huh.Form) error { return form.Run() }

// Confirm asks a yes/no question through a huh form. Aborting the form counts
// as declining.
func (HuhConfirmer) Confirm(prompt string, defaultYes bool) (bool, error) {
	value := defaultYes
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	))
	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return value, nil
}
