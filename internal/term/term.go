// Package term resolves the color mode and detects terminals.
//
// Color rendering itself is delegated to github.com/fatih/color; [Configure]
// flips that package's global NoColor switch once during startup so every
// consumer (logging, resolve) agrees on whether escapes are emitted.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/dupsweep/internal/config"
)

// Configure resolves the color mode and applies it to the color package.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether colored output is currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
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
