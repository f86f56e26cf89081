// Package policy centralizes naming decisions for font name records:
// family and full-name construction (IDs 1, 4, 16, 17), RIBBI subfamily
// mapping and style bits (ID 2), unique-identifier and version strings
// (IDs 3, 5), PostScript name sanitization (ID 6), and detection of the
// weight term a family uses in place of Regular.
package policy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/backmassage/fontnamer/internal/config"
	"github.com/backmassage/fontnamer/internal/strutil"
	"github.com/backmassage/fontnamer/internal/stylemap"
)

// ErrInvalidRegularEquivalent is wrapped by ValidateRegularEquivalent when
// the given term is not a recognized regular-equivalent weight.
var ErrInvalidRegularEquivalent = fmt.Errorf("invalid regular equivalent")

var (
	reRegularRoman = regexp.MustCompile(`(?i)\b(Regular|Roman)\b`)
	reItalic       = regexp.MustCompile(`(?i)\bItalic\b`)
	reOblique      = regexp.MustCompile(`(?i)\bOblique\b`)
	reSlanted      = regexp.MustCompile(`(?i)\bSlanted\b`)
)

// ValidateRegularEquivalent checks value against the canonical
// regular-equivalent weight terms. Empty input is valid and yields "".
// A recognized term comes back title-cased. Callers running in lenient
// mode log the error and proceed with the empty result.
func ValidateRegularEquivalent(value string) (string, error) {
	trimmed, ok := strutil.NormalizeEmpty(value)
	if !ok {
		return "", nil
	}
	canonical := titleTerm(trimmed)
	if !stylemap.RegularEquivalents[canonical] {
		valid := make([]string, 0, len(stylemap.RegularEquivalents))
		for term := range stylemap.RegularEquivalents {
			valid = append(valid, term)
		}
		sort.Strings(valid)
		return "", fmt.Errorf("%w %q (must be one of: %s)",
			ErrInvalidRegularEquivalent, trimmed, strings.Join(valid, ", "))
	}
	return canonical, nil
}

// NormalizeNFC returns s in Unicode NFC form.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// StyleOptions control how NormalizeStyleAndSlope treats regular-equivalent
// weight terms. The zero value behaves like config.SynonymRegularOnly with
// no explicit equivalent.
type StyleOptions struct {
	Synonyms          config.SynonymMode
	RegularEquivalent string // Family's regular-equivalent term, already validated.
}

// NormalizeStyleAndSlope prepares a subfamily style string for family and
// full names. Regular-equivalent weight terms are stripped according to the
// synonym mode, and Italic/Oblique/Slanted move from the style into the
// slope when the slope is not already set. The operation is idempotent.
func NormalizeStyleAndSlope(style, slope string, opts StyleOptions) (string, string) {
	style, _ = strutil.NormalizeEmpty(style)
	slope, _ = strutil.NormalizeEmpty(slope)
	if style == "" {
		return "", slope
	}

	style, extracted := extractSlope(style)
	if slope == "" {
		slope = extracted
	}

	mode := opts.Synonyms
	if mode == "" {
		mode = config.SynonymRegularOnly
	}
	switch mode {
	case config.SynonymOff:
		// Keep every weight term.
	case config.SynonymAll:
		for _, term := range sortedRegularEquivalents() {
			style = stripWord(style, term)
		}
	default:
		style = collapseSpaces(reRegularRoman.ReplaceAllString(style, ""))
		if eq := opts.RegularEquivalent; eq != "" && !strings.EqualFold(eq, "Regular") {
			style = stripWord(style, eq)
		}
	}

	return collapseSpaces(style), slope
}

// extractSlope removes the first recognized slope term from style and
// returns it separately.
func extractSlope(style string) (string, string) {
	switch {
	case reItalic.MatchString(style):
		return collapseSpaces(reItalic.ReplaceAllString(style, "")), "Italic"
	case reOblique.MatchString(style):
		return collapseSpaces(reOblique.ReplaceAllString(style, "")), "Oblique"
	case reSlanted.MatchString(style):
		return collapseSpaces(reSlanted.ReplaceAllString(style, "")), "Slanted"
	}
	return style, ""
}

func stripWord(s, word string) string {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return collapseSpaces(re.ReplaceAllString(s, ""))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortedRegularEquivalents() []string {
	terms := make([]string, 0, len(stylemap.RegularEquivalents))
	for term := range stylemap.RegularEquivalents {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// titleTerm uppercases the first byte and lowercases the rest. The
// regular-equivalent vocabulary is ASCII.
func titleTerm(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// CompoundModifier records a modifier word that the filename tokenizer
// split off its base term, e.g. "Extra Bold" parsed from "ExtraBold".
type CompoundModifier struct {
	Source   string // "family", "style" or "slope"
	Modifier string // Lowercased leading modifier word.
	ParsedAs string // The full value the modifier appeared in.
}

var compoundModifierWords = map[string]bool{
	"semi": true, "demi": true, "extra": true,
	"ultra": true, "super": true, "x": true,
}

// DetectCompoundModifiers scans family, style and slope for values whose
// first word is a bare weight or width modifier. These usually indicate a
// compound term split apart during tokenization and are worth a warning.
func DetectCompoundModifiers(family, style, slope string) []CompoundModifier {
	var found []CompoundModifier
	check := func(source, value string) {
		words := strings.Fields(strings.ToLower(value))
		if len(words) >= 2 && compoundModifierWords[words[0]] {
			found = append(found, CompoundModifier{Source: source, Modifier: words[0], ParsedAs: value})
		}
	}
	check("family", family)
	check("style", style)
	check("slope", slope)
	return found
}
