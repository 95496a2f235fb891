package wasm

type SectionID = byte

const (
	SectionIDCustom   SectionID = 0
	SectionIDType     SectionID = 1
	SectionIDImport   SectionID = 2
	SectionIDFunction SectionID = 3
	SectionIDTable    SectionID = 4
	SectionIDMemory   SectionID = 5
	SectionIDGlobal   SectionID = 6
	SectionIDExport   SectionID = 7
	SectionIDStart    SectionID = 8
	SectionIDElement  SectionID = 9
	SectionIDCode     SectionID = 10
	SectionIDData     SectionID = 11
)

// SectionIDName returns the name of the section in the standard, or "unknown"
// for ids outside it.
func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	}
	return "unknown"
}

// Section is one tagged, length-delimited chunk of the module. The set of
// variants is closed: only the types below implement it.
type Section interface {
	// SectionID returns the id this section was encoded with.
	SectionID() SectionID
}

// CustomSection retains only the name of a custom section; its payload is
// consumed and discarded by the decoder.
type CustomSection struct {
	Name string
}

// TypeSection holds the function signatures declared by the module.
type TypeSection struct {
	Entries []*FunctionType
}

// FunctionSection associates each module-defined function with an index into
// the type section.
type FunctionSection struct {
	Types []uint32
}

// MemorySection holds the linear memory declarations.
type MemorySection struct {
	Entries []*MemoryType
}

// ExportSection holds the module's named exports.
type ExportSection struct {
	Entries []*ExportEntry
}

// StartSection designates the function invoked automatically as the module's
// entry point. Index addresses the code section's body list.
type StartSection struct {
	Index uint32
}

// CodeSection holds the bodies of the module-defined functions.
type CodeSection struct {
	Bodies []*FunctionBody
}

// UnknownSection marks a section the decoder skipped. Only the id is kept;
// the payload bytes were consumed and discarded.
type UnknownSection struct {
	ID SectionID
}

func (s *CustomSection) SectionID() SectionID   { return SectionIDCustom }
func (s *TypeSection) SectionID() SectionID     { return SectionIDType }
func (s *FunctionSection) SectionID() SectionID { return SectionIDFunction }
func (s *MemorySection) SectionID() SectionID   { return SectionIDMemory }
func (s *ExportSection) SectionID() SectionID   { return SectionIDExport }
func (s *StartSection) SectionID() SectionID    { return SectionIDStart }
func (s *CodeSection) SectionID() SectionID     { return SectionIDCode }
func (s *UnknownSection) SectionID() SectionID  { return s.ID }
