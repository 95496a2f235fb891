// Package wasm holds the in-memory representation of a decoded WebAssembly
// module: the section variants, the types they own, and start-function
// resolution. The binary grammar that produces these values lives in
// wasm/binary.
package wasm

import (
	"errors"
	"fmt"
)

// Magic is the 4-byte preamble (literally "\0asm") of the binary format,
// read as a little-endian uint32.
const Magic uint32 = 0x6d736100

// Version is the format version. It hasn't changed between known
// specification versions.
const Version uint32 = 1

// Module is the decoded top-level structure of a binary program image.
// It is constructed once by the decoder and never mutated afterwards.
type Module struct {
	MagicNumber uint32
	Version     uint32
	// Sections are retained in encounter order.
	Sections []Section
}

// ErrNoStartFunction is returned by FindStartFunction when the module has no
// start section.
var ErrNoStartFunction = errors.New("module has no start section")

// ErrImportSectionPresent is returned by FindStartFunction when the module
// carries an import section. The start index is resolved directly against the
// code section's body list, which is only correct when no imported functions
// occupy the function index space.
var ErrImportSectionPresent = errors.New("module has an import section: imported functions are not supported")

// FindStartFunction returns the function body designated by the module's
// start section, or ErrNoStartFunction if there is none.
func (m *Module) FindStartFunction() (*FunctionBody, error) {
	start := m.startSection()
	if start == nil {
		return nil, ErrNoStartFunction
	}

	for _, s := range m.Sections {
		if u, ok := s.(*UnknownSection); ok && u.ID == SectionIDImport {
			return nil, ErrImportSectionPresent
		}
	}

	code := m.codeSection()
	if code == nil || uint64(start.Index) >= uint64(len(code.Bodies)) {
		numBodies := 0
		if code != nil {
			numBodies = len(code.Bodies)
		}
		return nil, fmt.Errorf("start function index %d out of range: module has %d code bodies", start.Index, numBodies)
	}
	return code.Bodies[start.Index], nil
}

// StartFunctionType resolves the declared signature of the start function via
// the function and type sections. It returns nil without error when the
// module doesn't carry enough type information to resolve one.
func (m *Module) StartFunctionType() (*FunctionType, error) {
	start := m.startSection()
	if start == nil {
		return nil, ErrNoStartFunction
	}

	var functions *FunctionSection
	var types *TypeSection
	for _, s := range m.Sections {
		switch sec := s.(type) {
		case *FunctionSection:
			functions = sec
		case *TypeSection:
			types = sec
		}
	}
	if functions == nil || types == nil {
		return nil, nil
	}

	if uint64(start.Index) >= uint64(len(functions.Types)) {
		return nil, fmt.Errorf("start function index %d out of range: function section has %d entries", start.Index, len(functions.Types))
	}
	typeIndex := functions.Types[start.Index]
	if uint64(typeIndex) >= uint64(len(types.Entries)) {
		return nil, fmt.Errorf("type index %d out of range: type section has %d entries", typeIndex, len(types.Entries))
	}
	return types.Entries[typeIndex], nil
}

func (m *Module) startSection() *StartSection {
	for _, s := range m.Sections {
		if start, ok := s.(*StartSection); ok {
			return start
		}
	}
	return nil
}

func (m *Module) codeSection() *CodeSection {
	for _, s := range m.Sections {
		if code, ok := s.(*CodeSection); ok {
			return code
		}
	}
	return nil
}
