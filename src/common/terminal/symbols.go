package terminal

import (
	"os"
	"strings"
)

// Symbols are the status markers printed before messages
type Symbols struct {
	Success string
	Error   string
	Warning string
}

// UnicodeSymbols for terminals with a UTF-8 locale
var UnicodeSymbols = Symbols{
	Success: "✓",
	Error:   "✗",
	Warning: "⚠",
}

// ASCIISymbols fallback for limited terminals
var ASCIISymbols = Symbols{
	Success: "[OK]",
	Error:   "[ERR]",
	Warning: "[WARN]",
}

// GetSymbols returns the symbol set the current terminal can draw
func GetSymbols() Symbols {
	if supportsUnicode() {
		return UnicodeSymbols
	}
	return ASCIISymbols
}

func supportsUnicode() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		val := strings.ToLower(os.Getenv(env))
		if strings.Contains(val, "utf-8") || strings.Contains(val, "utf8") {
			return true
		}
	}

	termName := os.Getenv("TERM")
	for _, t := range []string{"xterm", "rxvt", "screen", "tmux", "alacritty", "kitty", "konsole", "gnome"} {
		if strings.Contains(termName, t) {
			return true
		}
	}
	return false
}
