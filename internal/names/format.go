package names

import (
	"strings"
	"unicode"
)

// mergedToken is an intermediate unit between tokenization and casing.
// Merged digit+lowercase compounds ("35mm") must never be re-cased.
type mergedToken struct {
	Text   string
	Merged bool
}

// mergeDigitLowercase joins each digit run that is immediately followed by
// an all-lowercase token into one preserved unit, in a single forward pass.
// A merged pair never takes part in a further merge.
func mergeDigitLowercase(tokens []Token) []mergedToken {
	merged := make([]mergedToken, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		cur := tokens[i].Text
		if isAllDigits(cur) && i+1 < len(tokens) && isAllLower(tokens[i+1].Text) {
			merged = append(merged, mergedToken{Text: cur + tokens[i+1].Text, Merged: true})
			i++
			continue
		}
		merged = append(merged, mergedToken{Text: cur})
	}
	return merged
}

// formatToken applies the per-token casing rules: punctuation atoms,
// all-uppercase and all-lowercase tokens pass through, capital+digit shapes
// keep their casing, everything else is title-cased.
func formatToken(tok string) string {
	if tok == "" {
		return tok
	}
	if len(tok) == 1 && strings.ContainsRune("!*&({[]}?,;$%@", rune(tok[0])) {
		return tok
	}
	if isAllUpper(tok) || isAllLower(tok) {
		return tok
	}
	if hasCapDigitPrefix(tok) {
		return tok
	}
	rs := []rune(tok)
	return string(unicode.ToUpper(rs[0])) + strings.ToLower(string(rs[1:]))
}

// isAllUpper reports whether s contains at least one cased rune and no
// lowercase rune. Digits and punctuation do not break the check, so "G1"
// counts as all-uppercase.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// isAllLower reports whether s contains at least one cased rune and no
// uppercase rune.
func isAllLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isAllDigits reports whether s is non-empty and made of digits only.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hasCapDigitPrefix reports whether s starts with an ASCII capital letter
// followed by a digit (the "G1" / "B1.2.3" shape).
func hasCapDigitPrefix(s string) bool {
	rs := []rune(s)
	return len(rs) >= 2 && isUpperASCII(rs[0]) && unicode.IsDigit(rs[1])
}
