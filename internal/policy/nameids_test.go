package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildID1(t *testing.T) {
	tests := []struct {
		name                           string
		family, modifier, style, slope string
		opts                           BuildOptions
		want                           string
	}{
		{name: "plain family", family: "Queen", want: "Queen"},
		{name: "weight kept", family: "Queen", style: "Bold", want: "Queen Bold"},
		{name: "regular omitted", family: "Queen", style: "Regular", want: "Queen"},
		{name: "italic slope omitted", family: "Queen", style: "Bold Italic", want: "Queen Bold"},
		{name: "oblique slope kept", family: "Queen", style: "Oblique", want: "Queen Oblique"},
		{name: "modifier joined", family: "Queen", modifier: "Display", style: "Bold", want: "Queen Display Bold"},
		{name: "asterisk replaced", family: "My*Family", want: "My Family"},
		{
			name: "variable strips marker", family: "Roboto Variable",
			opts: BuildOptions{IsVariable: true}, want: "Roboto",
		},
		{
			name: "variable override wins", family: "Ignored",
			opts: BuildOptions{IsVariable: true, VariableFamily: "Roboto"}, want: "Roboto",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildID1(tt.family, tt.modifier, tt.style, tt.slope, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildID4(t *testing.T) {
	tests := []struct {
		name                           string
		family, modifier, style, slope string
		opts                           BuildOptions
		want                           string
	}{
		{name: "italic kept in full name", family: "Queen", style: "Bold Italic", want: "Queen Bold Italic"},
		{name: "regular omitted", family: "Queen", style: "Regular", want: "Queen"},
		{
			name: "variable static slope fallback", family: "Roboto",
			opts: BuildOptions{IsVariable: true}, want: "Roboto Variable",
		},
		{
			name: "variable italic bit", family: "Roboto",
			opts: BuildOptions{IsVariable: true, IsItalic: true}, want: "Roboto Variable Italic",
		},
		{
			name: "variable filename slope preferred", family: "Roboto",
			opts: BuildOptions{IsVariable: true, IsItalic: true, SlopeFromFilename: "Oblique"},
			want: "Roboto Variable Oblique",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildID4(tt.family, tt.modifier, tt.style, tt.slope, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildID16(t *testing.T) {
	assert.Equal(t, "Queen", BuildID16("Queen", BuildOptions{}))
	assert.Equal(t, "Roboto Variable", BuildID16("Roboto", BuildOptions{IsVariable: true}))
	assert.Equal(t, "Roboto Variable",
		BuildID16("Ignored", BuildOptions{IsVariable: true, VariableFamily: "Roboto"}))
}

func TestBuildID17(t *testing.T) {
	assert.Equal(t, "Regular", BuildID17("", "", ""))
	assert.Equal(t, "Bold Italic", BuildID17("", "Bold", "Italic"))
	assert.Equal(t, "Display Regular", BuildID17("Display", "Regular", ""))
}

func TestBuildID17VariableDefault(t *testing.T) {
	assert.Equal(t, "Regular", BuildID17VariableDefault(false, ""))
	assert.Equal(t, "Regular Italic", BuildID17VariableDefault(true, ""))
	assert.Equal(t, "Regular Oblique", BuildID17VariableDefault(true, "Oblique"))
}

func TestMapID2Subfamily(t *testing.T) {
	assert.Equal(t, "Regular", MapID2Subfamily(false, false))
	assert.Equal(t, "Bold", MapID2Subfamily(true, false))
	assert.Equal(t, "Italic", MapID2Subfamily(false, true))
	assert.Equal(t, "Bold Italic", MapID2Subfamily(true, true))
	for sub := range AllowedID2Subfamilies {
		assert.True(t, AllowedID2Subfamilies[sub])
	}
}

func TestComputeRIBBIFlags(t *testing.T) {
	tests := []struct {
		subfamily string
		fsSel     uint16
		mac       uint16
	}{
		{"Regular", 0x0040, 0x00},
		{"Bold", 0x0020, 0x01},
		{"Italic", 0x0001, 0x02},
		{"Bold Italic", 0x0021, 0x03},
		{"  bold italic  ", 0x0021, 0x03},
		{"", 0x0040, 0x00},
	}
	for _, tt := range tests {
		fsSel, mac := ComputeRIBBIFlags(tt.subfamily)
		assert.Equal(t, tt.fsSel, fsSel, "fsSelection for %q", tt.subfamily)
		assert.Equal(t, tt.mac, mac, "macStyle for %q", tt.subfamily)
	}
}

func TestVendorHandling(t *testing.T) {
	assert.Equal(t, "UKWN", FormatVendorID(""))
	assert.Equal(t, "AB  ", FormatVendorID("AB"))
	assert.Equal(t, "ABCD", FormatVendorID("ABCDE"))
	assert.Equal(t, "AB  ", FormatVendorID("AB\x00\x00"))

	assert.Equal(t, [4]byte{'A', 'B', ' ', ' '}, VendorTag("AB"))
	assert.Equal(t, [4]byte{'M', 'O', 'N', 'O'}, VendorTag("MONO"))

	assert.True(t, IsBadVendor(""))
	assert.True(t, IsBadVendor("    "))
	assert.True(t, IsBadVendor("NONE"))
	assert.True(t, IsBadVendor("none"))
	assert.True(t, IsBadVendor("TN  "))
	assert.True(t, IsBadVendor("\x00\x00\x00\x00"))
	assert.False(t, IsBadVendor("MONO"))
}

func TestBuildID3(t *testing.T) {
	assert.Equal(t, "Version 1.000;UKWN;Queen-Bold",
		BuildID3("Version 1.000", "UKWN", "Queen-Bold"))
}

func TestVersionFormatting(t *testing.T) {
	assert.Equal(t, "1.000", FormatVersionNumber("1.0"))
	assert.Equal(t, "1.000", FormatVersionNumber("1"))
	assert.Equal(t, "2.345", FormatVersionNumber("2.345"))
	assert.Equal(t, "abc", FormatVersionNumber("abc"))
	assert.Equal(t, "Version 1.100", BuildID5Version("1.1"))
}

func TestSanitizePostScript(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"QueenSans-Bold", "QueenSans-Bold"},
		{"My Font Pro", "MyFontPro"},
		{"My Font (Pro)", "MyFont-Pro-"},
		{"Fit?!&", "Fit?!&"},
		{"Füße", "F--e"},
		{"a_b.c", "a_b.c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizePostScript(tt.in), "input %q", tt.in)
	}

	long := strings.Repeat("A", 80)
	assert.Len(t, SanitizePostScript(long), 63)
}

func TestStripVariableTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Roboto Variable", "Roboto"},
		{"Roboto VF", "Roboto"},
		{"Roboto GX Italic", "Roboto  Italic"},
		{"Variable", ""},
		{"", ""},
		{"Queen", "Queen"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripVariableTokens(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeFamilyForPostScript(t *testing.T) {
	assert.Equal(t, "Roboto", NormalizeFamilyForPostScript("Roboto Variable"))
	assert.Equal(t, "Roboto", NormalizeFamilyForPostScript("Roboto-VF"))
	assert.Equal(t, "Queen", NormalizeFamilyForPostScript("Queen Italic"))
	assert.Equal(t, "My-Family", NormalizeFamilyForPostScript("My--Family--"))
}

func TestVariableFilenameFragment(t *testing.T) {
	assert.Equal(t, "MyFamily-Variable", VariableFilenameFragment("My Family Variable", false))
	assert.Equal(t, "MyFamily-VariableItalic", VariableFilenameFragment("My Family", true))
}

func TestEnsureRegularPrefixForPureSlope(t *testing.T) {
	assert.Equal(t, "Regular Italic", EnsureRegularPrefixForPureSlope("Italic"))
	assert.Equal(t, "Regular oblique", EnsureRegularPrefixForPureSlope("oblique"))
	assert.Equal(t, "Bold Italic", EnsureRegularPrefixForPureSlope("Bold Italic"))
	assert.Equal(t, "", EnsureRegularPrefixForPureSlope(""))
}
