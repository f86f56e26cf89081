// Package stylemap holds the style vocabulary used when normalizing font
// subfamily terms: compound normalizations with arbitrary casing choices,
// the style word list, regular-equivalent weight terms, and programmatic
// width variations. Pattern matching handles the rest; the maps stay
// minimal so outcomes are deterministic.
package stylemap

import "strings"

// CompoundNormalizations maps compound style spellings to their canonical
// casing. These are arbitrary style choices no pattern can decide.
var CompoundNormalizations = map[string]string{
	// Weight modifiers: lowercase the weight after the modifier.
	"SemiBold":   "Semibold",
	"DemiBold":   "Demibold",
	"ExtraBold":  "Extrabold",
	"UltraBold":  "Ultrabold",
	"SemiLight":  "Semilight",
	"ExtraLight": "Extralight",
	"UltraLight": "Ultralight",
	"ExtraBlack": "Extrablack",
	"UltraBlack": "Ultrablack",
	"ExtraThin":  "Extrathin",
	"UltraThin":  "Ultrathin",
	"ExtraHeavy": "Extraheavy",
	"UltraHeavy": "Ultraheavy",

	// Special cases.
	"SmallCaps":        "Smallcaps",
	"Small-Caps":       "Smallcaps",
	"ItalicSmallCaps":  "SmallcapsItalic",
	"ObliqueSmallCaps": "SmallcapsOblique",

	// Variable font cleanup.
	"VariableRegular-Variable": "Variable",
	"VariableItalic-Variable":  "VariableItalic",
	"VariableOblique-Variable": "VariableOblique",
	"Variable-Variable":        "Variable",
	"Variable-Italic":          "VariableItalic",
	"Variable-Oblique":         "VariableOblique",
	"VariableVariable":         "Variable",

	// Common substitutions.
	"Round-ed":  "Rounded",
	"Slant-ed":  "Slanted",
	"Semi-Mono": "SemiMono",
	"Semi Mono": "SemiMono",
	"Semimono":  "SemiMono",

	// Cleanup.
	"--": "-",
}

// RegularEquivalents are the weight terms that can act as a family's
// regular weight and receive standard Regular treatment.
var RegularEquivalents = map[string]bool{
	"Regular":  true,
	"Roman":    true,
	"Plain":    true,
	"Normal":   true,
	"Standard": true,
	"Book":     true,
	"Text":     true,
	"Medium":   true,
	"Light":    true,
}

// SlopeTerms are the slope descriptors extracted separately from weight
// and width when building family-level names.
var SlopeTerms = map[string]bool{
	"Italic":      true,
	"Oblique":     true,
	"Slanted":     true,
	"Slant":       true,
	"Inclined":    true,
	"Backslanted": true,
	"Backslant":   true,
}

// widthBases and modifiers generate the width variation set.
var widthBases = []string{
	"Condensed", "Compressed", "Compact", "Narrow",
	"Tight", "Extended", "Expanded", "Wide",
}

var modifiers = []string{"Semi", "Demi", "Extra", "Ultra", "Super"}

// opticalTerms are optical-size descriptors; modifiers are not combined
// with these.
var opticalTerms = map[string]bool{
	"Caption": true, "Display": true, "Text": true, "Poster": true,
	"Headline": true, "Subhead": true, "Title": true, "Deck": true,
	"Micro": true, "Banner": true,
}

// styleWords is the vocabulary of complete style terms, used for
// truncation detection and subfamily classification.
var styleWords = map[string]bool{
	// Weights.
	"Hairline": true, "Thin": true, "Extralight": true, "Ultralight": true,
	"Light": true, "Semilight": true, "Book": true, "Regular": true,
	"Normal": true, "Roman": true, "Medium": true, "Demibold": true,
	"Semibold": true, "Bold": true, "Extrabold": true, "Ultrabold": true,
	"Black": true, "Heavy": true, "Extrablack": true, "Ultrablack": true,
	"Fat": true, "Super": true, "Ultra": true,

	// Numeric weights.
	"100": true, "200": true, "300": true, "400": true, "500": true,
	"600": true, "700": true, "800": true, "900": true, "1000": true,

	// Slopes.
	"Italic": true, "Oblique": true, "Slanted": true, "Slant": true,
	"Inclined": true, "Backslanted": true, "Backslant": true,
	"Reverse": true, "Retalic": true,

	// Optical sizes.
	"Caption": true, "Display": true, "Text": true, "Poster": true,
	"Headline": true, "Subhead": true, "Title": true, "Titling": true,
	"Deck": true, "Micro": true, "Banner": true, "Fine": true,
	"Large": true, "Small": true, "Big": true, "Tall": true,

	// Other.
	"Rounded": true, "Round": true, "Mono": true, "Monospace": true,
	"Variable": true, "Smallcaps": true, "Unicase": true, "Capitals": true,

	// Decorative.
	"Rough": true, "Vintage": true, "Antique": true, "Shaded": true,
	"Shadow": true, "Line": true, "Inline": true, "DoubleLine": true,
	"Monoline": true, "Printed": true, "Pressed": true, "Distressed": true,
}

// widthTerms caches every width variation: base terms, modifier+base, and
// X-prefixed forms (XCondensed ... XXXXXXXWide). Built once at init.
var widthTerms = generateWidthTerms()

func generateWidthTerms() map[string]bool {
	terms := make(map[string]bool)
	for _, base := range widthBases {
		terms[base] = true
		for _, mod := range modifiers {
			terms[mod+base] = true
		}
		for n := 1; n <= 7; n++ {
			terms[strings.Repeat("X", n)+base] = true
		}
	}
	return terms
}

// NormalizeCompound returns the canonical form of a compound style term,
// or the input unchanged when no normalization applies.
func NormalizeCompound(term string) string {
	if canonical, ok := CompoundNormalizations[term]; ok {
		return canonical
	}
	return term
}

// IsStyleWord reports whether term (or a width variation of it) is a known
// complete style word.
func IsStyleWord(term string) bool {
	return styleWords[term] || widthTerms[term]
}

// IsWidthTerm reports whether term is a width descriptor, including
// modifier and X variations.
func IsWidthTerm(term string) bool { return widthTerms[term] }

// IsOpticalTerm reports whether term is an optical-size descriptor.
func IsOpticalTerm(term string) bool { return opticalTerms[term] }

// IsSlopeTerm reports whether term is a slope descriptor.
func IsSlopeTerm(term string) bool { return SlopeTerms[term] }

// IsRegularEquivalent reports whether term can serve as a family's regular
// weight. The comparison is case-insensitive against the canonical
// title-cased entries.
func IsRegularEquivalent(term string) bool {
	if term == "" {
		return false
	}
	return RegularEquivalents[titleWord(term)]
}

// titleWord uppercases the first byte and lowercases the rest; the
// vocabulary is ASCII.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
