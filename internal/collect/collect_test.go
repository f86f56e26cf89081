package collect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCollectFlat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Queen-Bold.ttf",
		"Queen-Italic.OTF",
		"readme.txt",
		"nested/Arch-Book.ttf",
	)

	got, err := Collect([]string{dir}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "Queen-Bold.ttf"),
		filepath.Join(dir, "Queen-Italic.OTF"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"Queen-Bold.ttf",
		"nested/Arch-Book.woff2",
		"nested/deep/More.ttx",
		"nested/skip.json",
	)

	got, err := Collect([]string{dir}, Options{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "Queen-Bold.ttf"),
		filepath.Join(dir, "nested", "Arch-Book.woff2"),
		filepath.Join(dir, "nested", "deep", "More.ttx"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectExplicitFilesAndDedupe(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Queen-Bold.ttf", "notes.md")
	fontPath := filepath.Join(dir, "Queen-Bold.ttf")

	got, err := Collect([]string{fontPath, fontPath, filepath.Join(dir, "notes.md")}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{fontPath}, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectExtensionOverride(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.ttf", "b.pfb")

	got, err := Collect([]string{dir}, Options{Extensions: []string{".PFB"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "b.pfb")}, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectMissingInputSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.otf")

	got, err := Collect([]string{filepath.Join(dir, "missing"), dir}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("Collect = %v, want single match", got)
	}
}

func TestCollectProgress(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.ttf", "b.ttf", "c.txt")

	var final Progress
	gotAny := false
	_, err := Collect([]string{dir}, Options{
		Recursive: true,
		OnProgress: func(p Progress) {
			gotAny = true
			final = p
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !gotAny {
		t.Fatal("expected at least one progress report")
	}
	if !final.Done {
		t.Error("last progress report should have Done set")
	}
	if final.FilesScanned != 3 || final.MatchesFound != 2 {
		t.Errorf("final progress = %+v, want 3 files scanned, 2 matches", final)
	}
}
