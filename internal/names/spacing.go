package names

import (
	"regexp"
	"unicode"
)

// Character classes driving the spacing rules. Tokens are compared by their
// full text, so only single-character tokens can belong to a class.
var (
	// noSpace characters attach to both neighbors with no spacing at all.
	// Apostrophe is included so possessives stay joined.
	noSpace = map[string]bool{"*": true, "@": true, "'": true}

	// leadingSpace characters take a space before them when the previous
	// token is alphanumeric, and never a space after.
	leadingSpace = map[string]bool{"(": true, "{": true, "[": true}

	// trailingSpace characters never take a space before them and take one
	// after when followed by anything that is not a noSpace character.
	trailingSpace = map[string]bool{
		"!": true, "?": true, ",": true, ";": true,
		")": true, "]": true, "}": true,
	}
)

var reDecimalToken = regexp.MustCompile(`^\d+(?:\.\d+)+$`)

// isNumericToken reports whether tok is purely numeric: a digit run or a
// dot-separated decimal like "19.99".
func isNumericToken(tok string) bool {
	if tok == "" {
		return false
	}
	return isAllDigits(tok) || reDecimalToken.MatchString(tok)
}

// isAlphanumericToken reports whether tok starts with a letter.
func isAlphanumericToken(tok string) bool {
	for _, r := range tok {
		return unicode.IsLetter(r)
	}
	return false
}

// applySpacingRules bakes a leading and/or trailing space into each
// formatted token based on its own class and its neighbors. Concatenating
// the result with no separator yields the final string (modulo an outer
// trim). Spaces only appear between tokens, never at the edges:
//
//   - noSpace tokens (* @ ') are never spaced on either side.
//   - leadingSpace tokens get a space before them after an alphanumeric
//     token; nothing after.
//   - trailingSpace tokens get a space after them unless the next token is
//     a noSpace character; nothing before.
//   - "$" attaches to an adjacent number on both sides ("$100", "19.99$")
//     and takes a space before it after a word; it never takes a trailing
//     space.
//   - "%" attaches to a preceding number and takes a trailing space only
//     before a letter-initial token ("100% Success", bare "50%").
//   - regular tokens take a space before themselves whenever the previous
//     token has not already suppressed it; they never add a space after.
func applySpacingRules(tokens []string) []string {
	nonEmpty := tokens[:0:0]
	for _, t := range tokens {
		if t != "" {
			nonEmpty = append(nonEmpty, t)
		}
	}
	tokens = nonEmpty
	if len(tokens) == 0 {
		return nil
	}

	result := make([]string, 0, len(tokens))
	for i, token := range tokens {
		var prev, next string
		if i > 0 {
			prev = tokens[i-1]
		}
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		spaceBefore := false
		if prev != "" {
			switch {
			case noSpace[token]:
				// never spaced
			case trailingSpace[token]:
				// its space goes after, not before
			case token == "$" || token == "%":
				if !isNumericToken(prev) && isAlphanumericToken(prev) {
					spaceBefore = true
				}
			case leadingSpace[token]:
				if isAlphanumericToken(prev) {
					spaceBefore = true
				}
			case noSpace[prev], trailingSpace[prev], leadingSpace[prev]:
				// previous token suppresses or already supplied the gap
			case prev == "$" && isNumericToken(token):
				// "$100"
			case prev == "%":
				// "%" handled its own trailing space
			default:
				spaceBefore = true
			}
		}

		spaceAfter := false
		if next != "" {
			switch {
			case noSpace[token]:
				// never spaced
			case token == "$":
				// "$" never takes a trailing space
			case token == "%":
				if isAlphanumericToken(next) {
					spaceAfter = true
				}
			case trailingSpace[token]:
				if !noSpace[next] {
					spaceAfter = true
				}
			}
		}

		spaced := token
		if spaceBefore {
			spaced = " " + spaced
		}
		if spaceAfter {
			spaced += " "
		}
		result = append(result, spaced)
	}
	return result
}
