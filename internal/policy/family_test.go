package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByFamilyFilename(t *testing.T) {
	groups := GroupByFamilyFilename([]string{
		"/fonts/Queen-Bold.ttf",
		"/fonts/Queen-Italic.ttf",
		"/other/ArchSans-Book.otf",
	})
	require.Len(t, groups, 2)
	assert.Len(t, groups["Queen"], 2)
	assert.Len(t, groups["Arch Sans"], 1)
}

func TestIdentifyRegularEquivalentFromFilenames(t *testing.T) {
	paths := []string{
		"/fonts/Queen-Regular.ttf",
		"/fonts/Queen-Bold.ttf",
	}
	assert.Equal(t, "Regular", IdentifyRegularEquivalent(paths, nil))
}

func TestIdentifyRegularEquivalentByWeight(t *testing.T) {
	weights := map[string]int{
		"/fonts/Arch-Book.ttf":   400,
		"/fonts/Arch-Medium.ttf": 500,
		"/fonts/Arch-Bold.ttf":   700,
	}
	weightOf := func(path string) (int, bool) {
		w, ok := weights[path]
		return w, ok
	}
	paths := []string{
		"/fonts/Arch-Book.ttf",
		"/fonts/Arch-Medium.ttf",
		"/fonts/Arch-Bold.ttf",
	}
	assert.Equal(t, "Book", IdentifyRegularEquivalent(paths, weightOf))
}

func TestIdentifyRegularEquivalentWeightTie(t *testing.T) {
	weights := map[string]int{
		"/fonts/Arch-Book.ttf":   380,
		"/fonts/Arch-Medium.ttf": 420,
	}
	weightOf := func(path string) (int, bool) {
		w, ok := weights[path]
		return w, ok
	}
	paths := []string{"/fonts/Arch-Book.ttf", "/fonts/Arch-Medium.ttf"}

	// Equal distance from 400 resolves by priority order, not weight.
	assert.Equal(t, "Book", IdentifyRegularEquivalent(paths, weightOf))
}

func TestIdentifyRegularEquivalentFallbackTerms(t *testing.T) {
	paths := []string{
		"/fonts/Arch-Book.ttf",
		"/fonts/Arch-Medium.ttf",
		"/fonts/Arch-Bold.ttf",
	}
	assert.Equal(t, "Book", IdentifyRegularEquivalent(paths, nil))
}

func TestIdentifyRegularEquivalentStandaloneText(t *testing.T) {
	paths := []string{
		"/fonts/Arch-Text.ttf",
		"/fonts/Arch-TextItalic.ttf",
		"/fonts/Arch-Bold.ttf",
	}
	assert.Equal(t, "Text", IdentifyRegularEquivalent(paths, nil))

	// "Text" alongside a weight names a weight, not an optical size.
	assert.Equal(t, "", IdentifyRegularEquivalent([]string{"/fonts/Arch-TextBold.ttf"}, nil))
}

func TestIdentifyRegularEquivalentUndecidable(t *testing.T) {
	assert.Equal(t, "", IdentifyRegularEquivalent(nil, nil))
	assert.Equal(t, "", IdentifyRegularEquivalent([]string{"/fonts/Arch-Bold.ttf"}, nil))
}

func TestRegularEquivalentsByFamily(t *testing.T) {
	paths := []string{
		"/fonts/Queen-Regular.ttf",
		"/fonts/Queen-Bold.ttf",
		"/fonts/Arch-Book.ttf",
	}
	got := RegularEquivalentsByFamily(paths, nil)
	require.Len(t, got, 2)
	assert.Equal(t, "Regular", got["Queen"])
	assert.Equal(t, "Book", got["Arch"])
}
