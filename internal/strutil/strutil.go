// Package strutil provides small string helpers shared by the naming
// policy code. The convention throughout: an empty or whitespace-only
// string means "no value".
package strutil

import "strings"

// IsEmpty reports whether s is empty or whitespace-only.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizeEmpty trims s and reports whether meaningful content remains.
// Use for optional fields where empty means absent.
func NormalizeEmpty(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// EnsureValue returns the trimmed value, or fallback when s is empty.
func EnsureValue(s, fallback string) string {
	if v, ok := NormalizeEmpty(s); ok {
		return v
	}
	return fallback
}

// Coalesce returns the first non-empty value, trimmed. Use for fallback
// chains (e.g. typographic family -> family -> "Unknown").
func Coalesce(values ...string) string {
	for _, v := range values {
		if trimmed, ok := NormalizeEmpty(v); ok {
			return trimmed
		}
	}
	return ""
}

// JoinNonEmpty joins the non-empty parts (trimmed) with sep. Use for
// building composite names.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed, ok := NormalizeEmpty(p); ok {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}
