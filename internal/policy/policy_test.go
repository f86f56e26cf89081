package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/fontnamer/internal/config"
)

func TestValidateRegularEquivalent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty is valid", "", "", false},
		{"whitespace only", "   ", "", false},
		{"canonical", "Book", "Book", false},
		{"lowercase", "roman", "Roman", false},
		{"uppercase", "NORMAL", "Normal", false},
		{"padded", "  Medium  ", "Medium", false},
		{"weight is not an equivalent", "Bold", "", true},
		{"nonsense", "Frobnicate", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRegularEquivalent(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRegularEquivalent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNFC(t *testing.T) {
	assert.Equal(t, "é", NormalizeNFC("é"))
	assert.Equal(t, "Queen", NormalizeNFC("Queen"))
	assert.Equal(t, "", NormalizeNFC(""))
}

func TestNormalizeStyleAndSlope(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		slope     string
		opts      StyleOptions
		wantStyle string
		wantSlope string
	}{
		{
			name:      "empty style passes slope through",
			style:     "", slope: "Italic",
			wantStyle: "", wantSlope: "Italic",
		},
		{
			name:  "regular stripped",
			style: "Regular", wantStyle: "", wantSlope: "",
		},
		{
			name:  "roman stripped",
			style: "Roman Condensed", wantStyle: "Condensed",
		},
		{
			name:  "slope extracted from style",
			style: "Bold Italic", wantStyle: "Bold", wantSlope: "Italic",
		},
		{
			name:  "oblique extracted",
			style: "Book Oblique", wantStyle: "Book", wantSlope: "Oblique",
		},
		{
			name:      "existing slope wins",
			style:     "Bold Italic", slope: "Oblique",
			wantStyle: "Bold", wantSlope: "Oblique",
		},
		{
			name:      "explicit equivalent stripped",
			style:     "Book Condensed",
			opts:      StyleOptions{RegularEquivalent: "Book"},
			wantStyle: "Condensed",
		},
		{
			name:  "book kept by default",
			style: "Book", wantStyle: "Book",
		},
		{
			name:      "all mode strips every equivalent",
			style:     "Light Condensed Italic",
			opts:      StyleOptions{Synonyms: config.SynonymAll},
			wantStyle: "Condensed", wantSlope: "Italic",
		},
		{
			name:      "off mode keeps regular",
			style:     "Regular Italic",
			opts:      StyleOptions{Synonyms: config.SynonymOff},
			wantStyle: "Regular", wantSlope: "Italic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, slope := NormalizeStyleAndSlope(tt.style, tt.slope, tt.opts)
			assert.Equal(t, tt.wantStyle, style)
			assert.Equal(t, tt.wantSlope, slope)
		})
	}
}

func TestNormalizeStyleAndSlopeIdempotent(t *testing.T) {
	style, slope := NormalizeStyleAndSlope("Bold Regular Italic", "", StyleOptions{})
	style2, slope2 := NormalizeStyleAndSlope(style, slope, StyleOptions{})
	assert.Equal(t, style, style2)
	assert.Equal(t, slope, slope2)
}

func TestDetectCompoundModifiers(t *testing.T) {
	found := DetectCompoundModifiers("Extra Sans", "Semi Bold", "Ultra Italic")
	require.Len(t, found, 3)
	assert.Equal(t, CompoundModifier{Source: "family", Modifier: "extra", ParsedAs: "Extra Sans"}, found[0])
	assert.Equal(t, CompoundModifier{Source: "style", Modifier: "semi", ParsedAs: "Semi Bold"}, found[1])
	assert.Equal(t, CompoundModifier{Source: "slope", Modifier: "ultra", ParsedAs: "Ultra Italic"}, found[2])

	assert.Empty(t, DetectCompoundModifiers("Queen", "Bold", "Italic"))
	assert.Empty(t, DetectCompoundModifiers("Extra", "", ""), "single word is not a compound")
}
