// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled the variables are empty strings,
// making string concatenation a no-op.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/fontnamer/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	Bold    = ""
	Dim     = ""
	NC      = "" // Reset sequence.
)

// Configure resolves the color mode and sets the package-level ANSI
// variables. Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	if resolve(mode) {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Blue = "\033[1;94m"
		Cyan = "\033[1;96m"
		Magenta = "\033[1;95m"
		Bold = "\033[1m"
		Dim = "\033[2m"
		NC = "\033[0m"
	} else {
		Red, Green, Yellow, Blue, Cyan, Magenta, Bold, Dim, NC = "", "", "", "", "", "", "", "", ""
	}
}

// Enabled reports whether colors are currently configured on.
func Enabled() bool { return NC != "" }

// resolve maps a ColorMode to an on/off decision. Auto means: stdout is a
// terminal, NO_COLOR is unset, and TERM is not "dumb".
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return IsTerminal(os.Stdout) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
