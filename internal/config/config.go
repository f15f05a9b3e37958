// Package config holds runtime configuration: defaults, the optional YAML
// settings file, and validation. Flag binding lives in the cli package; flags
// always win over the settings file, which wins over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPrefixBytes is the width of the byte-prefix pre-filter. Files whose
// first 8 bytes differ are never hashed.
const DefaultPrefixBytes = 8

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ParseColorMode converts a user-supplied string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by the cli package
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Roots are the directories to scan, in argument order. Argument order
	// is part of the traversal contract: it decides which copy of a
	// duplicate survives.
	Roots []string

	// Scan behavior.
	Recursive   bool // Default: true. Cleared by --no-recursive.
	PrefixBytes int  // Default: 8.

	// Deletion behavior.
	Delete    bool // Default: false (report only).
	AssumeYes bool // Skip the confirmation prompt. Requires Delete.

	// Output.
	ReportPath   string // Optional JSON report destination.
	LogFile      string // Optional log file (append).
	Verbose      bool
	ShowProgress bool // Default: true. Cleared by --no-progress.
	ColorMode    ColorMode
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Recursive:    true,
		PrefixBytes:  DefaultPrefixBytes,
		Delete:       false,
		AssumeYes:    false,
		Verbose:      false,
		ShowProgress: true,
		ColorMode:    ColorAuto,
	}
}

// NormalizeRoot strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeRoot(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks field constraints and flag combinations.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.PrefixBytes < 1 {
		return fmt.Errorf("prefix bytes must be at least 1 (got %d)", c.PrefixBytes)
	}

	if c.AssumeYes && !c.Delete {
		return errors.New("--yes only makes sense together with --delete")
	}

	if len(c.Roots) == 0 {
		return errors.New("need at least one directory to scan")
	}
	return nil
}
