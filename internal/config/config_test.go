package config

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if !cfg.Recursive {
		t.Error("recursion should default to on")
	}
	if cfg.Synonyms != SynonymRegularOnly {
		t.Errorf("default synonym mode = %q", cfg.Synonyms)
	}
}

func TestValidateRejectsBadEnums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("bad color mode accepted")
	}

	cfg = DefaultConfig()
	cfg.Synonyms = "maybe"
	if err := cfg.Validate(); err == nil {
		t.Error("bad synonym mode accepted")
	}

	cfg = DefaultConfig()
	cfg.Extensions = []string{"ttf"}
	if err := cfg.Validate(); err == nil {
		t.Error("undotted extension accepted")
	}
}

func TestParseExtensionList(t *testing.T) {
	got, err := ParseExtensionList("TTF, .otf ,woff2")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{".ttf", ".otf", ".woff2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extension list mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseExtensionList(" , "); err == nil {
		t.Error("empty list accepted")
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{"--no-recursive", "--ext", "ttf,otf", "--keep-ext",
		"--synonyms", "all", "--no-color", "-v", "QueenSans-Bold.ttf"}
	if err := ParseFlags(&cfg, "parse", args, io.Discard); err != nil {
		t.Fatal(err)
	}

	if cfg.Recursive {
		t.Error("--no-recursive not applied")
	}
	if diff := cmp.Diff([]string{".ttf", ".otf"}, cfg.Extensions); diff != "" {
		t.Errorf("extensions mismatch (-want +got):\n%s", diff)
	}
	if !cfg.KeepExtension || !cfg.Verbose {
		t.Error("boolean flags not applied")
	}
	if cfg.Synonyms != SynonymAll {
		t.Errorf("synonyms = %q", cfg.Synonyms)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("color mode = %q", cfg.ColorMode)
	}
	if diff := cmp.Diff([]string{"QueenSans-Bold.ttf"}, cfg.Inputs); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagsRejectsBadSynonymMode(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "parse", []string{"--synonyms", "sometimes"}, io.Discard)
	if err == nil {
		t.Error("invalid synonym mode accepted")
	}
}
