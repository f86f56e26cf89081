package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDetectVariableModes(t *testing.T) {
	static := NewMemoryFont("glyf", "cmap")
	fvarOnly := NewMemoryFont()
	fvarOnly.SetAxes(4, "wght")
	fullVF := NewMemoryFont("STAT", "avar", "MVAR")
	fullVF.SetAxes(9, "wght", "wdth")

	tests := []struct {
		name string
		f    Font
		mode DetectionMode
		want bool
	}{
		{"static strict", static, ModeStrict, false},
		{"static lenient", static, ModeLenient, false},
		{"fvar only strict", fvarOnly, ModeStrict, false},
		{"fvar only lenient", fvarOnly, ModeLenient, true},
		{"full strict", fullVF, ModeStrict, true},
		{"full lenient", fullVF, ModeLenient, true},
		{"full pedantic", fullVF, ModePedantic, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVariable(tt.f, tt.mode); got != tt.want {
				t.Errorf("IsVariable(%s) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestDetectVariableAnalysis(t *testing.T) {
	f := NewMemoryFont("STAT")
	f.SetAxes(9, "wght", "wdth", "opsz")

	got := DetectVariable(f, ModeStrict)
	want := Analysis{
		IsVariable:    true,
		HasFvar:       true,
		HasSTAT:       true,
		AxisCount:     3,
		Axes:          []string{"wght", "wdth", "opsz"},
		InstanceCount: 9,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DetectVariable mismatch (-want +got):\n%s", diff)
	}
	if !got.SpecCompliant() || !got.TechnicallyValid() {
		t.Error("full variable font should be compliant and valid")
	}
}

func TestDetectVariableIssues(t *testing.T) {
	f := NewMemoryFont()
	f.SetAxes(0)

	got := DetectVariable(f, ModeLenient)
	wantIssues := []string{
		"missing STAT table (recommended by OpenType spec)",
		"fvar table exists but has no axes",
	}
	if diff := cmp.Diff(wantIssues, got.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectVariablePedanticSTAT(t *testing.T) {
	f := NewMemoryFont("STAT")
	f.SetAxes(2, "wght")
	f.SetSTATIssues("STAT missing AxisValueArray")

	strict := DetectVariable(f, ModeStrict)
	if len(strict.Issues) != 0 {
		t.Errorf("strict mode should skip STAT validation, got %v", strict.Issues)
	}

	pedantic := DetectVariable(f, ModePedantic)
	if diff := cmp.Diff([]string{"STAT missing AxisValueArray"}, pedantic.Issues); diff != "" {
		t.Errorf("pedantic issues mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryTable(t *testing.T) {
	table := NewMemoryTable()
	SetWindowsEnglish(table, NameIDFamily, "Queen")
	SetWindowsEnglish(table, NameIDSubfamily, "Bold")
	table.Set(RecordKey{NameID: NameIDFamily, PlatformID: 1}, "Queen Mac")

	if got, ok := GetWindowsEnglish(table, NameIDFamily); !ok || got != "Queen" {
		t.Errorf("GetWindowsEnglish(1) = %q, %v", got, ok)
	}
	if _, ok := GetWindowsEnglish(table, NameIDFullName); ok {
		t.Error("missing record should not be found")
	}

	keys := table.Keys()
	wantKeys := []RecordKey{
		{NameID: NameIDFamily, PlatformID: 1},
		WindowsEnglish(NameIDFamily),
		WindowsEnglish(NameIDSubfamily),
	}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	if !table.Remove(WindowsEnglish(NameIDSubfamily)) {
		t.Error("Remove of existing record should report true")
	}
	if table.Remove(WindowsEnglish(NameIDSubfamily)) {
		t.Error("second Remove should report false")
	}
}
