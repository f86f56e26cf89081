package policy

import (
	"math"
	"regexp"
	"strings"

	"github.com/backmassage/fontnamer/internal/names"
)

// Family-level regular-equivalent detection. Some families never ship a
// "Regular" weight and use Book, Roman or similar as the upright default.
// The detection below decides which term should get Regular treatment.

// RegularFallbackPriority orders the candidate terms used when no font in
// the family carries "Regular". Ties in weight distance resolve in this
// order.
var RegularFallbackPriority = []string{
	"Roman", "Plain", "Normal", "Book", "Text", "Medium", "Light",
}

// WeightFunc reports the usWeightClass of a font file. The second return
// is false when the weight cannot be read.
type WeightFunc func(path string) (int, bool)

// GroupByFamilyFilename groups font file paths by the family parsed from
// each filename. Fonts whose family cannot be determined land under
// "Unknown".
func GroupByFamilyFilename(paths []string) map[string][]string {
	families := make(map[string][]string)
	for _, path := range paths {
		family := names.FamilyFromFilename(path)
		if family == "" {
			family = "Unknown"
		}
		families[family] = append(families[family], path)
	}
	return families
}

// IdentifyRegularEquivalent decides which weight term acts as Regular for
// a family, given all its font paths. Detection order: a literal "Regular"
// in any filename wins; otherwise the term whose average weight sits
// closest to 400; otherwise the first fallback term found in filenames.
// Returns "" when undecidable. weightOf may be nil when weights are
// unavailable.
func IdentifyRegularEquivalent(familyPaths []string, weightOf WeightFunc) string {
	if len(familyPaths) == 0 {
		return ""
	}
	for _, path := range familyPaths {
		sub := names.SubfamilyFromFilename(path)
		if strings.Contains(strings.ToLower(sub), "regular") {
			return "Regular"
		}
	}
	if weightOf != nil {
		if term := closestToRegularWeight(familyPaths, weightOf); term != "" {
			return term
		}
	}
	return fallbackTermFromFilenames(familyPaths)
}

// RegularEquivalentsByFamily groups paths by filename family and maps each
// family to its detected regular-equivalent term ("" when undecidable).
func RegularEquivalentsByFamily(paths []string, weightOf WeightFunc) map[string]string {
	result := make(map[string]string)
	for family, familyPaths := range GroupByFamilyFilename(paths) {
		result[family] = IdentifyRegularEquivalent(familyPaths, weightOf)
	}
	return result
}

// closestToRegularWeight averages usWeightClass per candidate term across
// the family and returns the term closest to 400, breaking ties by
// priority order.
func closestToRegularWeight(familyPaths []string, weightOf WeightFunc) string {
	termWeights := make(map[string][]int)
	for _, path := range familyPaths {
		weight, ok := weightOf(path)
		if !ok {
			continue
		}
		sub := names.SubfamilyFromFilename(path)
		if term := extractWeightTerm(sub); term != "" {
			termWeights[term] = append(termWeights[term], weight)
		}
	}
	if len(termWeights) == 0 {
		return ""
	}

	closest := math.Inf(1)
	var winners []string
	for term, weights := range termWeights {
		sum := 0
		for _, w := range weights {
			sum += w
		}
		distance := math.Abs(float64(sum)/float64(len(weights)) - 400)
		switch {
		case distance < closest:
			closest = distance
			winners = []string{term}
		case distance == closest:
			winners = append(winners, term)
		}
	}
	if len(winners) == 1 {
		return winners[0]
	}
	for _, candidate := range RegularFallbackPriority {
		for _, w := range winners {
			if w == candidate {
				return candidate
			}
		}
	}
	return winners[0]
}

// fallbackTermFromFilenames scans family filenames for candidate terms and
// returns the highest-priority one found. "Text" only counts when it
// stands alone as an optical size.
func fallbackTermFromFilenames(familyPaths []string) string {
	counts := make(map[string]int)
	textStandalone := 0
	for _, path := range familyPaths {
		sub := names.SubfamilyFromFilename(path)
		if sub == "" {
			continue
		}
		if isStandaloneText(sub) {
			textStandalone++
		}
		if term := extractWeightTerm(sub); term != "" {
			counts[term]++
		}
	}
	for _, candidate := range RegularFallbackPriority {
		if candidate == "Text" {
			if textStandalone > 0 {
				return "Text"
			}
			continue
		}
		if counts[candidate] > 0 {
			return candidate
		}
	}
	return ""
}

// extractWeightTerm returns the first candidate term found in subfamily,
// or "Regular" when present, or "".
func extractWeightTerm(subfamily string) string {
	if subfamily == "" {
		return ""
	}
	lower := strings.ToLower(subfamily)
	for _, term := range RegularFallbackPriority {
		if strings.Contains(lower, strings.ToLower(term)) {
			return term
		}
	}
	if strings.Contains(lower, "regular") {
		return "Regular"
	}
	return ""
}

var (
	reSlopeWords = regexp.MustCompile(`\b(italic|oblique|slanted)\b`)
	reNonLetters = regexp.MustCompile(`[^a-z]+`)
)

// weightDisqualifiers rule out "Text" as a standalone optical size when a
// weight term accompanies it ("Text Bold" names a weight, not a size).
var weightDisqualifiers = []string{
	"bold", "book", "normal", "medium", "black", "heavy", "extra", "semi", "demi",
}

func isStandaloneText(subfamily string) bool {
	lower := strings.ToLower(subfamily)
	if !strings.Contains(lower, "text") {
		return false
	}
	for _, w := range weightDisqualifiers {
		if strings.Contains(lower, w) {
			return false
		}
	}
	stripped := reSlopeWords.ReplaceAllString(lower, "")
	stripped = reNonLetters.ReplaceAllString(stripped, "")
	return stripped == "text"
}
