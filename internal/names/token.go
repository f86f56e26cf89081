package names

import (
	"strings"
	"unicode"
)

// Kind classifies a token produced by [Tokenize].
type Kind uint8

const (
	KindRaw         Kind = iota // span no matcher claimed, carried verbatim
	KindAcronym                 // "XML" in "XMLHttp"
	KindCapNumber               // "G1", "B1.2.3"
	KindDecimal                 // "0.1", "1.2.3"
	KindWord                    // "Queen", "oook"
	KindAllCaps                 // "KWAK", "UI"
	KindSingleUpper             // "U" in "FitU&lc"
	KindDigits                  // "35", "2"
	KindPunct                   // one of the punctuation atoms
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindAcronym:
		return "acronym"
	case KindCapNumber:
		return "cap-number"
	case KindDecimal:
		return "decimal"
	case KindWord:
		return "word"
	case KindAllCaps:
		return "all-caps"
	case KindSingleUpper:
		return "single-upper"
	case KindDigits:
		return "digits"
	case KindPunct:
		return "punct"
	}
	return "unknown"
}

// Token is one unit of a tokenized segment. Concatenating the Text of all
// tokens in order reconstructs the segment exactly.
type Token struct {
	Text string
	Kind Kind
}

// tokenMatcher pairs a token kind with its match function. Matchers are
// evaluated in order by [Tokenize]; first match wins. A match function
// returns the number of runes consumed at pos, or 0 for no match.
type tokenMatcher struct {
	Kind  Kind
	Match func(rs []rune, pos int) int
}

// matchers is the ordered matcher table. Order matters: acronym runs must
// be tried before all-caps runs, capital+number before bare digits, and so
// on. Mirrors the precedence of the legacy alternation pattern.
var matchers = []tokenMatcher{
	{KindAcronym, matchAcronymRun},
	{KindCapNumber, matchCapNumber},
	{KindDecimal, matchDecimalNumber},
	{KindWord, matchCapitalizedWord},
	{KindAllCaps, matchAllCapsRun},
	{KindSingleUpper, matchSingleUppercase},
	{KindDigits, matchDigitRun},
	{KindPunct, matchPunctAtom},
}

// punctAtoms are the characters tokenized as standalone atoms. Right
// parenthesis is deliberately absent; it falls through as a raw token but
// still gets trailing-space treatment from the spacing engine.
const punctAtoms = "&!*({[]}?,;$%@"

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLowerASCII(r rune) bool { return r >= 'a' && r <= 'z' }

// wordBoundary holds the characters (besides uppercase letters and digits)
// that may terminate a capitalized word.
const wordBoundary = "&!*(){}[]?,;$-%@'"

// upperRunLen returns the length of the ASCII uppercase run starting at pos.
func upperRunLen(rs []rune, pos int) int {
	n := 0
	for pos+n < len(rs) && isUpperASCII(rs[pos+n]) {
		n++
	}
	return n
}

// matchAcronymRun matches an uppercase run that directly precedes a
// capitalized word, consuming all but the word's leading capital:
// "XMLHttp" yields "XML". Requires at least two uppercase letters so the
// leading capital of an ordinary word is left to matchCapitalizedWord.
func matchAcronymRun(rs []rune, pos int) int {
	n := upperRunLen(rs, pos)
	if n < 2 {
		return 0
	}
	if pos+n < len(rs) && isLowerASCII(rs[pos+n]) {
		return n - 1
	}
	return 0
}

// matchCapNumber matches a single capital letter followed by digits and
// optional dot-decimal continuations ("G1", "B1.2.3"). The capital must not
// be preceded by another capital, so "C123" inside "ABC123" is not claimed.
func matchCapNumber(rs []rune, pos int) int {
	if pos > 0 && isUpperASCII(rs[pos-1]) {
		return 0
	}
	if pos >= len(rs) || !isUpperASCII(rs[pos]) {
		return 0
	}
	i := pos + 1
	start := i
	for i < len(rs) && unicode.IsDigit(rs[i]) {
		i++
	}
	if i == start {
		return 0
	}
	i = consumeDecimalGroups(rs, i)
	return i - pos
}

// matchDecimalNumber matches digits with one or more dot-separated digit
// groups ("0.1", "1.2.3"). Bare digit runs are left to matchDigitRun.
func matchDecimalNumber(rs []rune, pos int) int {
	i := pos
	for i < len(rs) && unicode.IsDigit(rs[i]) {
		i++
	}
	if i == pos {
		return 0
	}
	end := consumeDecimalGroups(rs, i)
	if end == i {
		return 0
	}
	return end - pos
}

// consumeDecimalGroups extends i across ".<digits>" groups, as many as are
// present. Returns the new position.
func consumeDecimalGroups(rs []rune, i int) int {
	for i < len(rs) && rs[i] == '.' {
		j := i + 1
		for j < len(rs) && unicode.IsDigit(rs[j]) {
			j++
		}
		if j == i+1 {
			return i
		}
		i = j
	}
	return i
}

// matchCapitalizedWord matches an optional leading capital followed by a
// run of lowercase letters, but only when the run ends at a recognized
// boundary: another capital, a digit, one of the wordBoundary characters,
// or end of input. "foo.bar" has no boundary at the dot, so nothing is
// claimed there and the span falls through as raw.
func matchCapitalizedWord(rs []rune, pos int) int {
	i := pos
	if i < len(rs) && isUpperASCII(rs[i]) {
		i++
	}
	start := i
	for i < len(rs) && isLowerASCII(rs[i]) {
		i++
	}
	if i == start {
		return 0
	}
	if i < len(rs) {
		next := rs[i]
		if !isUpperASCII(next) && !unicode.IsDigit(next) && !strings.ContainsRune(wordBoundary, next) {
			return 0
		}
	}
	return i - pos
}

// matchAllCapsRun matches a run of two or more uppercase letters ("KWAK",
// "UI"). Single letters fall to matchSingleUppercase.
func matchAllCapsRun(rs []rune, pos int) int {
	n := upperRunLen(rs, pos)
	if n < 2 {
		return 0
	}
	return n
}

// matchSingleUppercase matches one standalone uppercase letter.
func matchSingleUppercase(rs []rune, pos int) int {
	if pos < len(rs) && isUpperASCII(rs[pos]) {
		return 1
	}
	return 0
}

// matchDigitRun matches one or more digits.
func matchDigitRun(rs []rune, pos int) int {
	n := 0
	for pos+n < len(rs) && unicode.IsDigit(rs[pos+n]) {
		n++
	}
	return n
}

// matchPunctAtom matches a single punctuation atom.
func matchPunctAtom(rs []rune, pos int) int {
	if pos < len(rs) && strings.ContainsRune(punctAtoms, rs[pos]) {
		return 1
	}
	return 0
}

