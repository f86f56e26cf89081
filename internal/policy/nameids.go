package policy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/fontnamer/internal/strutil"
)

// --- IDs 1, 4, 16, 17 (family and full names) ---

// BuildOptions carry the per-font context for name construction. The zero
// value builds static-font names with default synonym handling.
type BuildOptions struct {
	IsVariable        bool
	VariableFamily    string // Family override for variable fonts.
	IsItalic          bool   // Variable fallback when no filename slope is known.
	SlopeFromFilename string // Slope parsed from the filename, preferred over IsItalic.
	RawStyle          bool   // Skip style and slope normalization.
	Style             StyleOptions
}

// BuildID1 constructs the family name. Regular-equivalent weight terms are
// omitted, a plain Italic slope is omitted (it belongs in ID 2), and
// variable fonts use the stripped base family alone.
func BuildID1(family, modifier, style, slope string, opts BuildOptions) string {
	if opts.IsVariable {
		base := strutil.Coalesce(opts.VariableFamily, family)
		base = strutil.EnsureValue(sanitizeAsterisk(base), base)
		return strutil.EnsureValue(StripVariableTokens(base), base)
	}

	if !opts.RawStyle {
		style, slope = NormalizeStyleAndSlope(style, slope, opts.Style)
	}
	if strings.EqualFold(strings.TrimSpace(slope), "Italic") {
		slope = ""
	}

	family = strutil.EnsureValue(sanitizeAsterisk(family), family)
	return strutil.JoinNonEmpty(" ",
		family, sanitizeAsterisk(modifier), sanitizeAsterisk(style), sanitizeAsterisk(slope))
}

// BuildID4 constructs the full font name. Variable fonts become
// "Family Variable [Slope]"; static fonts join family, modifier, style and
// slope after normalization.
func BuildID4(family, modifier, style, slope string, opts BuildOptions) string {
	if opts.IsVariable {
		base := strutil.Coalesce(opts.VariableFamily, family)
		base = strutil.EnsureValue(sanitizeAsterisk(base), base)
		if opts.SlopeFromFilename != "" {
			fromFile := strutil.EnsureValue(sanitizeAsterisk(opts.SlopeFromFilename), opts.SlopeFromFilename)
			return strutil.JoinNonEmpty(" ", base, "Variable", fromFile)
		}
		if opts.IsItalic {
			return strutil.JoinNonEmpty(" ", base, "Variable Italic")
		}
		return strutil.JoinNonEmpty(" ", base, "Variable")
	}

	if !opts.RawStyle {
		style, slope = NormalizeStyleAndSlope(style, slope, opts.Style)
	}

	family = strutil.EnsureValue(sanitizeAsterisk(family), family)
	return strutil.JoinNonEmpty(" ",
		family, sanitizeAsterisk(modifier), sanitizeAsterisk(style), sanitizeAsterisk(slope))
}

// BuildID16 constructs the typographic family name. Variable fonts append
// "Variable"; static fonts use the family as-is.
func BuildID16(family string, opts BuildOptions) string {
	if opts.IsVariable {
		base := strutil.Coalesce(opts.VariableFamily, family)
		return strutil.JoinNonEmpty(" ", base, "Variable")
	}
	return family
}

// BuildID17 constructs the typographic subfamily. Unlike IDs 1 and 4 it
// keeps Regular and Italic tokens, falling back to "Regular" when empty.
func BuildID17(modifier, style, slope string) string {
	return strutil.EnsureValue(strutil.JoinNonEmpty(" ", modifier, style, slope), "Regular")
}

// BuildID17VariableDefault builds the typographic subfamily for variable
// fonts. A slope parsed from the filename wins over italic-bit detection.
func BuildID17VariableDefault(isItalic bool, slopeFromFilename string) string {
	if slope, ok := strutil.NormalizeEmpty(slopeFromFilename); ok {
		return "Regular " + slope
	}
	if isItalic {
		return "Regular Italic"
	}
	return "Regular"
}

var reSpaceRun = regexp.MustCompile(` +`)

// sanitizeAsterisk replaces asterisks with spaces and collapses the
// result. The filename tokenizer passes "*" through as an atom, which has
// no place in a display name.
func sanitizeAsterisk(text string) string {
	replaced := strings.ReplaceAll(text, "*", " ")
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(replaced, " "))
}

// --- ID 2 (subfamily) ---

// AllowedID2Subfamilies are the only values a legacy subfamily record may
// hold.
var AllowedID2Subfamilies = map[string]bool{
	"Regular": true, "Italic": true, "Bold": true, "Bold Italic": true,
}

// MapID2Subfamily maps style metrics to one of the allowed legacy
// subfamilies.
func MapID2Subfamily(isBold, isItalic bool) string {
	switch {
	case isBold && isItalic:
		return "Bold Italic"
	case isBold:
		return "Bold"
	case isItalic:
		return "Italic"
	}
	return "Regular"
}

// ComputeRIBBIFlags derives the fsSelection and macStyle bit values that
// must agree with the given legacy subfamily.
func ComputeRIBBIFlags(subfamily string) (fsSelection, macStyle uint16) {
	sub := strings.ToLower(strings.TrimSpace(subfamily))
	isBold := strings.Contains(sub, "bold")
	isItalic := strings.Contains(sub, "italic")

	if isItalic {
		fsSelection |= 0x0001
	}
	if isBold {
		fsSelection |= 0x0020
	}
	if !isBold && !isItalic {
		fsSelection |= 0x0040 // REGULAR
	}

	if isBold {
		macStyle |= 0x01
	}
	if isItalic {
		macStyle |= 0x02
	}
	return fsSelection, macStyle
}

// --- ID 3 (unique identifier) and vendor handling ---

// badVendorPatterns are vendor tags known to be placeholders written by
// font editors rather than real foundry identifiers.
var badVendorPatterns = map[string]bool{
	"NONE": true, "XXXX": true, "PYRS": true, "PFED": true,
	"HL": true, "TN": true,
}

// FormatVendorID renders a raw vendor value as a 4-character display
// string. NUL padding becomes spaces; an absent vendor becomes "UKWN".
func FormatVendorID(vendor string) string {
	if vendor == "" {
		return "UKWN"
	}
	vendor = strings.ReplaceAll(vendor, "\x00", " ")
	if len(vendor) < 4 {
		vendor += strings.Repeat(" ", 4-len(vendor))
	}
	return vendor[:4]
}

// VendorTag prepares a vendor string for the OS/2 achVendID field: exactly
// four bytes, space padded, non-ASCII replaced.
func VendorTag(vendor string) [4]byte {
	var tag [4]byte
	padded := FormatVendorID(vendor)
	for i := 0; i < 4; i++ {
		b := padded[i]
		if b > 0x7F {
			b = '?'
		}
		tag[i] = b
	}
	return tag
}

// IsBadVendor reports whether vendor is empty, blank, or a known
// placeholder tag.
func IsBadVendor(vendor string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(vendor, "\x00", " "))
	trimmed := strings.TrimSpace(normalized)
	return trimmed == "" || badVendorPatterns[trimmed]
}

// BuildID3 composes the unique identifier from parts sanitized upstream.
func BuildID3(version, vendor, filename string) string {
	return version + ";" + vendor + ";" + filename
}

// --- ID 5 (version) ---

// FormatVersionNumber formats a numeric version string with three decimal
// places ("1.0" becomes "1.000"). Non-numeric input passes through.
func FormatVersionNumber(value string) string {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}
	return strconv.FormatFloat(num, 'f', 3, 64)
}

// BuildID5Version builds the canonical version record content.
func BuildID5Version(value string) string {
	return "Version " + FormatVersionNumber(value)
}

// --- ID 6 (PostScript name) ---

const maxPostScriptLen = 63

var rePostScriptInvalid = regexp.MustCompile(`[^A-Za-z0-9\-._?!&]`)

// SanitizePostScript makes a name safe for the PostScript record: spaces
// removed, characters outside the allowed set replaced with hyphens, and
// the result capped at 63 bytes.
func SanitizePostScript(name string) string {
	name = strings.ReplaceAll(name, " ", "")
	name = rePostScriptInvalid.ReplaceAllString(name, "-")
	if len(name) > maxPostScriptLen {
		name = name[:maxPostScriptLen]
	}
	return name
}

// --- Variable font naming helpers ---

var (
	reVariableTokens = regexp.MustCompile(`(?i)\b(Variable|VF|GX|Flex)\b`)
	reVariableJoined = regexp.MustCompile(`(?i)(?:^|[-_\s])Variable(?:Italic)?($|[-_\s])`)
	reVFJoined       = regexp.MustCompile(`(?i)(?:^|[-_\s])(?:VF|GX|Flex)($|[-_\s])`)
	reTrailingSlope  = regexp.MustCompile(`(?i)[-_\s]*(Italic|Oblique|Slanted)$`)
	reHyphenRun      = regexp.MustCompile(`-{2,}`)
	reTrailingJunk   = regexp.MustCompile(`[-_\s]+$`)
)

// StripVariableTokens removes Variable/VF/GX/Flex markers from text,
// whether space-, hyphen- or underscore-joined. Returns "" when nothing
// else remains.
func StripVariableTokens(text string) string {
	text, ok := strutil.NormalizeEmpty(text)
	if !ok {
		return ""
	}
	text = reVariableTokens.ReplaceAllString(text, "")
	text = reVariableJoined.ReplaceAllString(text, " $1")
	text = reVFJoined.ReplaceAllString(text, " $1")
	return strings.TrimSpace(text)
}

// NormalizeFamilyForPostScript strips variable markers and trailing slope
// tokens from a family-like string and sanitizes the remainder.
func NormalizeFamilyForPostScript(family string) string {
	s := strutil.EnsureValue(StripVariableTokens(family), family)
	s = reTrailingSlope.ReplaceAllString(s, "")
	s = reHyphenRun.ReplaceAllString(s, "-")
	s = reTrailingJunk.ReplaceAllString(s, "")
	return SanitizePostScript(s)
}

// VariableFilenameFragment builds the canonical filename stem for a
// variable font, e.g. "MyFamily-Variable" or "MyFamily-VariableItalic".
func VariableFilenameFragment(family string, isItalic bool) string {
	suffix := "Variable"
	if isItalic {
		suffix = "VariableItalic"
	}
	return NormalizeFamilyForPostScript(family) + "-" + suffix
}

// EnsureRegularPrefixForPureSlope prefixes a bare slope subfamily with
// "Regular" so "Italic" becomes "Regular Italic".
func EnsureRegularPrefixForPureSlope(subfamily string) string {
	trimmed := strings.TrimSpace(subfamily)
	switch strings.ToLower(trimmed) {
	case "italic", "oblique", "slanted":
		return "Regular " + trimmed
	}
	return subfamily
}
