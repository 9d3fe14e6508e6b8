// Package terminal answers whether the process is talking to an operator or
// to pipes, which decides how confirmations are rendered.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stdout are both terminals. Scripted
// and piped invocations fail this check and get the plain line-based prompts.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
