// Package display renders messages, tables and the startup banner
package display

import (
	"os"

	"golang.org/x/term"
)

// Package-level function variables for testing
var isTerminalFunc = term.IsTerminal

// ColorEnabled decides whether output to f should carry ANSI colors.
// noColor comes from --no-color or output.color=never.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor {
		return false
	}

	// NO_COLOR environment variable (standard)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return false
	}

	return isTerminalFunc(int(f.Fd()))
}
