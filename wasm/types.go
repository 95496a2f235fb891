package wasm

// FunctionType is a function's parameter and return type signature.
// Result is nil for functions that return nothing; the binary format of this
// version allows at most one result.
type FunctionType struct {
	// Form is the leading type-constructor byte, 0x60 for functions.
	Form   int8
	Params []ValueType
	Result *ValueType
}

// MemoryType describes one linear memory.
type MemoryType struct {
	Limits ResizableLimits
}

// ResizableLimits bounds the size of a memory in 64KiB pages. Max is nil
// when the memory is unbounded.
type ResizableLimits struct {
	Initial uint32
	Max     *uint32
}

// ExternalKind tags what an export refers to.
type ExternalKind = byte

const (
	ExternalKindFunction ExternalKind = 0
	ExternalKindTable    ExternalKind = 1
	ExternalKindMemory   ExternalKind = 2
	ExternalKindGlobal   ExternalKind = 3
)

// ExternalKindName returns the name of the kind in the text format.
func ExternalKindName(k ExternalKind) string {
	switch k {
	case ExternalKindFunction:
		return "func"
	case ExternalKindTable:
		return "table"
	case ExternalKindMemory:
		return "memory"
	case ExternalKindGlobal:
		return "global"
	}
	return "unknown"
}

// ExportEntry names one export and the index it refers to within its kind's
// index space.
type ExportEntry struct {
	Name  string
	Kind  ExternalKind
	Index uint32
}

// FunctionBody is a function's local declarations plus its opcode stream.
// Code excludes the terminating OpcodeEnd byte.
type FunctionBody struct {
	Locals []*LocalEntry
	Code   []byte
}

// LocalEntry declares Count consecutive locals of the same type.
type LocalEntry struct {
	Count uint32
	Type  ValueType
}
