// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation for the fontnamer tool.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// SynonymMode controls how regular-equivalent weight terms are treated when
// building family-level name IDs.
type SynonymMode string

const (
	SynonymRegularOnly SynonymMode = "regular_only" // Omit only literal "Regular" (default).
	SynonymAll         SynonymMode = "all"          // Omit every regular-equivalent term.
	SynonymOff         SynonymMode = "off"          // Keep every term.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Inputs are the positional arguments: files, directories, or (for the
	// parse subcommand) bare name strings.
	Inputs []string

	// File collection.
	Recursive  bool     // Default: true. Cleared by --no-recursive.
	Extensions []string // Lowercase, with leading dot. Default: font formats.

	// Parsing behavior.
	KeepExtension bool        // Keep the file extension when parsing names.
	Synonyms      SynonymMode // Default: "regular_only".

	// Behavior flags.
	DryRun bool // Report planned name-table changes without applying them.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultFontExtensions are the font file extensions collected when no
// --ext override is given.
var DefaultFontExtensions = []string{".ttf", ".otf", ".woff", ".woff2", ".ttx"}

// DefaultConfig returns a Config with all defaults applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Recursive:  true,
		Extensions: append([]string(nil), DefaultFontExtensions...),
		Synonyms:   SynonymRegularOnly,
		ColorMode:  ColorAuto,
	}
}

// Validate checks that enum fields hold valid values and that the
// extension list is usable.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	switch c.Synonyms {
	case SynonymRegularOnly, SynonymAll, SynonymOff:
		// valid
	default:
		return errors.New("invalid synonym mode (use 'regular_only', 'all' or 'off')")
	}

	if len(c.Extensions) == 0 {
		return errors.New("extension list must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q (use dotted form, e.g. .ttf)", ext)
		}
	}
	return nil
}

// ParseExtensionList canonicalizes a comma-separated extension list:
// entries are trimmed, lowercased, and given a leading dot.
func ParseExtensionList(raw string) ([]string, error) {
	var exts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		if len(part) < 2 {
			return nil, fmt.Errorf("invalid extension %q", part)
		}
		exts = append(exts, part)
	}
	if len(exts) == 0 {
		return nil, errors.New("extension list must not be empty")
	}
	return exts, nil
}
