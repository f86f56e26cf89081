// Package sorter groups fonts by family and superfamily. Superfamily
// clustering joins families that share a meaningful name prefix
// ("Queen Sans" and "Queen Serif" become one "Queen" group), with
// ignore-terms, exclusion patterns and forced merges layered on top.
package sorter

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/backmassage/fontnamer/internal/names"
)

// FontInfo is the per-font record the sorter works with.
type FontInfo struct {
	Path     string
	Family   string
	Vendor   string
	VendorID string
	Designer string
	Style    string
}

// NewFontInfo builds a FontInfo with the family name NFC-normalized.
// An empty family becomes "Unknown".
func NewFontInfo(path, family string) FontInfo {
	if family == "" {
		family = "Unknown"
	}
	return FontInfo{Path: path, Family: norm.NFC.String(family)}
}

// FromPaths derives FontInfo records from filenames alone, using the
// filename parser for the family part.
func FromPaths(paths []string) []FontInfo {
	fonts := make([]FontInfo, 0, len(paths))
	for _, path := range paths {
		info := NewFontInfo(path, names.FamilyFromFilename(path))
		info.Style = names.SubfamilyFromFilename(path)
		fonts = append(fonts, info)
	}
	return fonts
}

// Sorter groups a fixed set of fonts.
type Sorter struct {
	fonts []FontInfo
}

// New returns a Sorter over the given fonts.
func New(fonts []FontInfo) *Sorter {
	return &Sorter{fonts: fonts}
}

// GroupByFamily groups fonts by family name. Forced groups merge the
// named families under the first member present in the input.
func (s *Sorter) GroupByFamily(forcedGroups [][]string) map[string][]FontInfo {
	families := make(map[string][]FontInfo)
	for _, font := range s.fonts {
		families[font.Family] = append(families[font.Family], font)
	}
	return ApplyForcedGroups(families, forcedGroups)
}

// GroupByVendor groups fonts by vendor name.
func (s *Sorter) GroupByVendor() map[string][]FontInfo {
	return s.groupBy(func(f FontInfo) string { return f.Vendor })
}

// GroupByVendorID groups fonts by the OS/2 vendor tag.
func (s *Sorter) GroupByVendorID() map[string][]FontInfo {
	return s.groupBy(func(f FontInfo) string { return f.VendorID })
}

// GroupByDesigner groups fonts by designer name.
func (s *Sorter) GroupByDesigner() map[string][]FontInfo {
	return s.groupBy(func(f FontInfo) string { return f.Designer })
}

func (s *Sorter) groupBy(key func(FontInfo) string) map[string][]FontInfo {
	groups := make(map[string][]FontInfo)
	for _, font := range s.fonts {
		k := key(font)
		if k == "" {
			k = "Unknown"
		}
		groups[k] = append(groups[k], font)
	}
	return groups
}

// ApplyForcedGroups merges groups per the forced group lists. A forced
// group takes effect when at least two of its members exist; the merged
// group keeps the first present member's name.
func ApplyForcedGroups(groups map[string][]FontInfo, forcedGroups [][]string) map[string][]FontInfo {
	if len(forcedGroups) == 0 {
		return groups
	}

	target := make(map[string]string)
	for _, forced := range forcedGroups {
		var present []string
		for _, family := range forced {
			if _, ok := groups[family]; ok {
				present = append(present, family)
			}
		}
		if len(present) >= 2 {
			for _, family := range present {
				target[family] = present[0]
			}
		}
	}

	merged := make(map[string][]FontInfo)
	for name, fonts := range groups {
		dest := name
		if t, ok := target[name]; ok {
			dest = t
		}
		merged[dest] = append(merged[dest], fonts...)
	}
	for name := range merged {
		sort.Slice(merged[name], func(i, j int) bool {
			return merged[name][i].Path < merged[name][j].Path
		})
	}
	return merged
}

// SuperfamilyOptions tune superfamily clustering.
type SuperfamilyOptions struct {
	// IgnoreTerms are name tokens skipped during prefix comparison
	// (foundry prefixes like "29LT" or "Adobe").
	IgnoreTerms []string
	// ExcludeFamilies are lowercase substrings; matching families never
	// merge into a superfamily.
	ExcludeFamilies []string
	// ForcedGroups merge the named groups after clustering.
	ForcedGroups [][]string
}

// GroupBySuperfamily clusters families that share a meaningful leading
// name prefix and groups fonts accordingly.
func (s *Sorter) GroupBySuperfamily(opts SuperfamilyOptions) map[string][]FontInfo {
	ignore := make(map[string]bool, len(opts.IgnoreTerms))
	for _, term := range opts.IgnoreTerms {
		ignore[term] = true
	}
	excludePatterns := make([]string, 0, len(opts.ExcludeFamilies))
	for _, pattern := range opts.ExcludeFamilies {
		excludePatterns = append(excludePatterns, strings.ToLower(pattern))
	}

	// Unique family names in first-seen order keeps clustering
	// deterministic.
	var uniqueNames []string
	seen := make(map[string]bool)
	for _, font := range s.fonts {
		if !seen[font.Family] {
			seen[font.Family] = true
			uniqueNames = append(uniqueNames, font.Family)
		}
	}

	var groupable, excluded []string
	for _, name := range uniqueNames {
		if matchesAny(strings.ToLower(name), excludePatterns) {
			excluded = append(excluded, name)
		} else {
			groupable = append(groupable, name)
		}
	}

	superfamily := buildSuperfamilyMap(groupable, excluded, ignore)

	groups := make(map[string][]FontInfo)
	for _, font := range s.fonts {
		groups[superfamily[font.Family]] = append(groups[superfamily[font.Family]], font)
	}
	return ApplyForcedGroups(groups, opts.ForcedGroups)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(name, pattern) {
			return true
		}
	}
	return false
}

func buildSuperfamilyMap(groupable, excluded []string, ignore map[string]bool) map[string]string {
	superfamily := make(map[string]string)

	for i, nameA := range groupable {
		for _, nameB := range groupable[i+1:] {
			prefix := sharedPrefix(nameA, nameB, ignore)
			if prefix == "" {
				continue
			}
			assign(superfamily, nameA, nameB, prefix)
		}
	}

	for _, name := range groupable {
		if _, ok := superfamily[name]; !ok {
			superfamily[name] = name
		}
	}
	for _, name := range excluded {
		superfamily[name] = name
	}
	return superfamily
}

// assign puts both families into the same superfamily, merging any
// existing assignments toward the shorter prefix.
func assign(superfamily map[string]string, nameA, nameB, prefix string) {
	sfA, okA := superfamily[nameA]
	sfB, okB := superfamily[nameB]
	switch {
	case okA && okB:
		target := sfA
		if len(strings.Fields(sfB)) < len(strings.Fields(sfA)) {
			target = sfB
		}
		for name, sf := range superfamily {
			if sf == sfA || sf == sfB {
				superfamily[name] = target
			}
		}
	case okA:
		superfamily[nameB] = sfA
	case okB:
		superfamily[nameA] = sfB
	default:
		superfamily[nameA] = prefix
		superfamily[nameB] = prefix
	}
}

// sharedPrefix returns the common leading tokens of two family names
// when substantial enough to justify grouping, else "".
func sharedPrefix(nameA, nameB string, ignore map[string]bool) string {
	tokensA := filterTokens(nameA, ignore)
	tokensB := filterTokens(nameB, ignore)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return ""
	}

	var common []string
	for i := 0; i < len(tokensA) && i < len(tokensB); i++ {
		if tokensA[i] != tokensB[i] {
			break
		}
		common = append(common, tokensA[i])
	}
	if len(common) == 0 {
		return ""
	}
	prefix := strings.Join(common, " ")
	if len(common) >= 2 {
		return prefix
	}
	if substantialSingleToken(common[0], tokensA, tokensB) {
		return prefix
	}
	return ""
}

func filterTokens(name string, ignore map[string]bool) []string {
	var kept []string
	for _, token := range strings.Fields(name) {
		if !ignore[token] {
			kept = append(kept, token)
		}
	}
	return kept
}

// substantialSingleToken decides whether one shared leading token is
// enough to merge. Short tokens only count when they are a complete
// family name or both names are multi-word.
func substantialSingleToken(token string, tokensA, tokensB []string) bool {
	if len(token) < 3 {
		return false
	}
	isCompleteName := token == strings.Join(tokensA, " ") || token == strings.Join(tokensB, " ")
	bothMultiword := len(tokensA) >= 2 && len(tokensB) >= 2
	if len(token) == 3 {
		return isCompleteName || bothMultiword
	}
	if isCompleteName || bothMultiword {
		return true
	}
	return len(tokensA) == 1 && len(tokensB) == 1
}

// GroupingSummary describes a grouping result.
type GroupingSummary struct {
	TotalFonts    int
	NumGroups     int
	AvgGroupSize  float64
	LargestGroup  int
	SmallestGroup int
}

// Summarize computes size statistics for a grouping.
func Summarize(groups map[string][]FontInfo) GroupingSummary {
	s := GroupingSummary{NumGroups: len(groups)}
	first := true
	for _, fonts := range groups {
		n := len(fonts)
		s.TotalFonts += n
		if n > s.LargestGroup {
			s.LargestGroup = n
		}
		if first || n < s.SmallestGroup {
			s.SmallestGroup = n
			first = false
		}
	}
	if s.NumGroups > 0 {
		s.AvgGroupSize = float64(s.TotalFonts) / float64(s.NumGroups)
	}
	return s
}
