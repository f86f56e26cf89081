package font

import "fmt"

// DetectionMode controls how strictly a font must follow the OpenType
// variable font recommendations before it counts as variable.
type DetectionMode uint8

const (
	// ModeStrict requires both fvar and STAT tables.
	ModeStrict DetectionMode = iota
	// ModeLenient requires only fvar.
	ModeLenient
	// ModePedantic is strict plus structural validation of STAT.
	ModePedantic
)

func (m DetectionMode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLenient:
		return "lenient"
	case ModePedantic:
		return "pedantic"
	}
	return fmt.Sprintf("DetectionMode(%d)", uint8(m))
}

// Analysis describes a font's variable characteristics.
type Analysis struct {
	IsVariable    bool
	HasFvar       bool
	HasSTAT       bool
	HasAvar       bool
	HasMVAR       bool
	AxisCount     int
	Axes          []string
	InstanceCount int
	Issues        []string
}

// SpecCompliant reports whether the font meets the OpenType variable
// font recommendation (fvar plus STAT).
func (a Analysis) SpecCompliant() bool { return a.HasFvar && a.HasSTAT }

// TechnicallyValid reports whether the font is variable in the minimal
// sense (fvar present).
func (a Analysis) TechnicallyValid() bool { return a.HasFvar }

// STATValidator is implemented by font sources that can inspect STAT
// internals. Pedantic detection folds its findings into the analysis.
type STATValidator interface {
	ValidateSTAT() []string
}

// DetectVariable analyzes the font's variation tables and decides, per
// mode, whether it is a variable font.
func DetectVariable(f Font, mode DetectionMode) Analysis {
	a := Analysis{
		HasFvar:       f.HasTable("fvar"),
		HasSTAT:       f.HasTable("STAT"),
		HasAvar:       f.HasTable("avar"),
		HasMVAR:       f.HasTable("MVAR"),
		Axes:          f.AxisTags(),
		InstanceCount: f.InstanceCount(),
	}
	a.AxisCount = len(a.Axes)

	switch mode {
	case ModeLenient:
		a.IsVariable = a.HasFvar
	case ModeStrict, ModePedantic:
		a.IsVariable = a.HasFvar && a.HasSTAT
	}

	if a.HasFvar && !a.HasSTAT {
		a.Issues = append(a.Issues, "missing STAT table (recommended by OpenType spec)")
	}
	if a.HasFvar && a.AxisCount == 0 {
		a.Issues = append(a.Issues, "fvar table exists but has no axes")
	}

	if mode == ModePedantic && a.IsVariable {
		if v, ok := f.(STATValidator); ok {
			a.Issues = append(a.Issues, v.ValidateSTAT()...)
		}
	}
	return a
}

// IsVariable reports whether f is a variable font under the given mode.
func IsVariable(f Font, mode DetectionMode) bool {
	return DetectVariable(f, mode).IsVariable
}
