package names

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ParsedName holds the structured result of parsing one font filename.
// All fields are set at construction and never mutated.
type ParsedName struct {
	Original     string // input as given
	Base         string // basename with marker and extension stripped
	FamilyRaw    string // left of the first hyphen, unformatted
	SubfamilyRaw string // right of the first hyphen, unformatted
	Family       string // formatted family
	Subfamily    string // formatted subfamily, empty when no hyphen
}

// forbiddenReplacer maps filesystem-forbidden characters to underscores,
// which then act as ordinary segment breakpoints.
var forbiddenReplacer = strings.NewReplacer(":", "_", `\`, "_")

// SanitizeForbiddenCharacters replaces ":" and "\" with underscores.
func SanitizeForbiddenCharacters(name string) string {
	return forbiddenReplacer.Replace(name)
}

// normalizeBasename reduces an input path to a bare filename: directory
// dropped, forbidden characters replaced, the internal .CFF2 format marker
// removed, and (optionally) the extension stripped. The marker is handled
// before extension stripping so "Name.CFF2.otf" loses both.
func normalizeBasename(inputName string, stripExt bool) string {
	if inputName == "" {
		return ""
	}
	candidate := filepath.Base(inputName)
	candidate = SanitizeForbiddenCharacters(candidate)

	if strings.Contains(candidate, ".CFF2.") {
		candidate = strings.ReplaceAll(candidate, ".CFF2.", ".")
	} else {
		candidate = strings.TrimSuffix(candidate, ".CFF2")
	}

	if stripExt {
		candidate = stripExtension(candidate)
	}
	return candidate
}

// stripExtension drops the rightmost ".ext" suffix. Names made of leading
// dots only (".CFF2", "..hidden") have no extension to strip, matching the
// usual basename/splitext convention.
func stripExtension(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name
	}
	if strings.Trim(name[:dot], ".") == "" {
		return name
	}
	return name[:dot]
}

// splitAtHyphen splits at the first hyphen only. The right side is empty
// when no hyphen is present.
func splitAtHyphen(base string) (string, string) {
	left, right, _ := strings.Cut(base, "-")
	return left, right
}

// FormatPascalWords converts a PascalCase/mixed string into space-separated
// words: "QueenSansExtra" becomes "Queen Sans Extra", acronym runs stay
// together ("UIUX Kit"), underscores act as breakpoints and are never
// emitted, segments starting with a lowercase letter keep their original
// casing, and digit+lowercase pairs are merged ("35mm"). Spacing rules run
// across the whole token stream, so underscore boundaries never affect
// spacing, only casing preservation.
func FormatPascalWords(value string) string {
	if value == "" {
		return ""
	}

	var formatted []string
	for _, segment := range strings.Split(value, "_") {
		if segment == "" {
			continue
		}
		merged := mergeDigitLowercase(Tokenize(segment))
		preserve := startsLower(segment)
		for _, m := range merged {
			if preserve || m.Merged {
				formatted = append(formatted, m.Text)
				continue
			}
			formatted = append(formatted, formatToken(m.Text))
		}
	}

	return strings.TrimSpace(strings.Join(applySpacingRules(formatted), ""))
}

// startsLower reports whether the segment's first rune is a lowercase
// letter, which switches the whole segment to casing preservation.
func startsLower(segment string) bool {
	for _, r := range segment {
		return unicode.IsLower(r)
	}
	return false
}

// SplitFamilySubfamily splits an input filename into formatted family and
// subfamily strings. The split happens at the first hyphen of the
// normalized basename; with no hyphen the subfamily is empty.
func SplitFamilySubfamily(inputName string, stripExtension bool) (family, subfamily string) {
	base := normalizeBasename(inputName, stripExtension)
	left, right := splitAtHyphen(base)

	family = FormatPascalWords(left)
	if right != "" {
		subfamily = FormatPascalWords(right)
	}
	return family, subfamily
}

// FamilyFromFilename returns just the formatted family part, with the
// extension stripped.
func FamilyFromFilename(inputName string) string {
	family, _ := SplitFamilySubfamily(inputName, true)
	return family
}

// SubfamilyFromFilename returns just the formatted subfamily part, with
// the extension stripped. Finer style analysis (weight/width/slope) builds
// on top of this in the policy package.
func SubfamilyFromFilename(inputName string) string {
	_, subfamily := SplitFamilySubfamily(inputName, true)
	return subfamily
}

// ParseFilename parses a font filename into structured raw and formatted
// parts.
func ParseFilename(inputName string, stripExtension bool) ParsedName {
	base := normalizeBasename(inputName, stripExtension)
	left, right := splitAtHyphen(base)

	p := ParsedName{
		Original:     inputName,
		Base:         base,
		FamilyRaw:    left,
		SubfamilyRaw: right,
		Family:       FormatPascalWords(left),
	}
	if right != "" {
		p.Subfamily = FormatPascalWords(right)
	}
	return p
}
