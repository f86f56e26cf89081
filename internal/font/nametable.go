// Package font models the narrow slice of a font file that naming code
// touches: table presence, fvar axis information, and the name table
// keyed by name ID, platform, encoding and language. The in-memory
// implementation backs tests and the demo commands; a binary-backed
// implementation can satisfy the same interfaces.
package font

import "sort"

// OpenType platform and language constants for the Windows-English
// records most tools read and write.
const (
	PlatformWindows    = 3
	EncodingUnicodeBMP = 1
	LangEnglishUS      = 0x0409
)

// Name IDs handled by the naming policy.
const (
	NameIDFamily        = 1
	NameIDSubfamily     = 2
	NameIDUniqueID      = 3
	NameIDFullName      = 4
	NameIDVersion       = 5
	NameIDPostScript    = 6
	NameIDTypoFamily    = 16
	NameIDTypoSubfamily = 17
)

// RecordKey identifies a single name record.
type RecordKey struct {
	NameID     uint16
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
}

// WindowsEnglish returns the key for the Windows Unicode BMP US-English
// record of the given name ID.
func WindowsEnglish(nameID uint16) RecordKey {
	return RecordKey{
		NameID:     nameID,
		PlatformID: PlatformWindows,
		EncodingID: EncodingUnicodeBMP,
		LanguageID: LangEnglishUS,
	}
}

// NameTable is the record store of a font's name table.
type NameTable interface {
	// Get returns the value of the record, if present.
	Get(key RecordKey) (string, bool)
	// Set writes or replaces the record.
	Set(key RecordKey, value string)
	// Remove deletes the record and reports whether it existed.
	Remove(key RecordKey) bool
	// Keys returns all record keys in deterministic order.
	Keys() []RecordKey
}

// Font is the capability view of a font file used by detection and
// naming code.
type Font interface {
	// HasTable reports whether the font carries the table with the
	// given tag ("fvar", "STAT", "CFF ", ...).
	HasTable(tag string) bool
	// AxisTags returns the fvar axis tags, empty for static fonts.
	AxisTags() []string
	// InstanceCount returns the number of named fvar instances.
	InstanceCount() int
	// Names returns the font's name table.
	Names() NameTable
}

// GetWindowsEnglish reads the Windows-English record of nameID.
func GetWindowsEnglish(t NameTable, nameID uint16) (string, bool) {
	return t.Get(WindowsEnglish(nameID))
}

// SetWindowsEnglish writes the Windows-English record of nameID.
func SetWindowsEnglish(t NameTable, nameID uint16, value string) {
	t.Set(WindowsEnglish(nameID), value)
}

// --- in-memory implementation ---

// MemoryTable is a map-backed NameTable.
type MemoryTable struct {
	records map[RecordKey]string
}

// NewMemoryTable returns an empty in-memory name table.
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{records: make(map[RecordKey]string)}
}

func (t *MemoryTable) Get(key RecordKey) (string, bool) {
	value, ok := t.records[key]
	return value, ok
}

func (t *MemoryTable) Set(key RecordKey, value string) {
	t.records[key] = value
}

func (t *MemoryTable) Remove(key RecordKey) bool {
	_, ok := t.records[key]
	delete(t.records, key)
	return ok
}

func (t *MemoryTable) Keys() []RecordKey {
	keys := make([]RecordKey, 0, len(t.records))
	for key := range t.records {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.NameID != b.NameID {
			return a.NameID < b.NameID
		}
		if a.PlatformID != b.PlatformID {
			return a.PlatformID < b.PlatformID
		}
		if a.EncodingID != b.EncodingID {
			return a.EncodingID < b.EncodingID
		}
		return a.LanguageID < b.LanguageID
	})
	return keys
}

// MemoryFont is an in-memory Font for tests and the demo commands.
type MemoryFont struct {
	tables     map[string]bool
	axes       []string
	instances  int
	names      *MemoryTable
	statIssues []string
}

// NewMemoryFont builds a font carrying the given tables. A "name" table
// is always present.
func NewMemoryFont(tags ...string) *MemoryFont {
	f := &MemoryFont{
		tables: map[string]bool{"name": true},
		names:  NewMemoryTable(),
	}
	for _, tag := range tags {
		f.tables[tag] = true
	}
	return f
}

// SetAxes configures the fvar axes and named instance count, implying an
// fvar table.
func (f *MemoryFont) SetAxes(instances int, tags ...string) {
	f.tables["fvar"] = true
	f.axes = append([]string(nil), tags...)
	f.instances = instances
}

// SetSTATIssues records structural problems reported during pedantic
// validation.
func (f *MemoryFont) SetSTATIssues(issues ...string) {
	f.statIssues = append([]string(nil), issues...)
}

func (f *MemoryFont) HasTable(tag string) bool { return f.tables[tag] }
func (f *MemoryFont) AxisTags() []string       { return f.axes }
func (f *MemoryFont) InstanceCount() int       { return f.instances }
func (f *MemoryFont) Names() NameTable         { return f.names }

// ValidateSTAT reports the configured structural issues.
func (f *MemoryFont) ValidateSTAT() []string { return f.statIssues }
