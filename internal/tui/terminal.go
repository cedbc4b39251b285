package tui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape sequences
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	FgBrightGreen = "\033[92m"
	FgBrightBlack = "\033[90m"
)

// IsTerminal reports whether w is an *os.File attached to a terminal.
// Anything else (buffers, pipes, files on disk) is treated as plain output.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

