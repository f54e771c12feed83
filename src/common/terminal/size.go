// Package terminal answers questions about the attached terminal
package terminal

import (
	"os"

	"golang.org/x/term"
)

// CompactWidth is the narrowest width that still fits the boxed banner
const CompactWidth = 56

// Package-level function variables, replaced in tests
var (
	isTerminalFunc = term.IsTerminal
	getSizeFunc    = term.GetSize
)

// Size represents terminal dimensions
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the size of the terminal behind f, or 80x24 when f is
// not a terminal
func GetSize(f *os.File) Size {
	cols, rows, err := getSizeFunc(int(f.Fd()))
	if err != nil || cols == 0 {
		cols = 80
	}
	if err != nil || rows == 0 {
		rows = 24
	}
	return Size{Cols: cols, Rows: rows}
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return isTerminalFunc(int(f.Fd()))
}

// Compact reports whether the banner should use its one-line form
func (s Size) Compact() bool {
	return s.Cols < CompactWidth
}
