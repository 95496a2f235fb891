package binary

import (
	"fmt"
	"io"

	"github.com/motorwasm/motor/wasm"
	"github.com/motorwasm/motor/wasm/leb128"
)

// decodeCustomSection keeps only the name. The rest of the payload is
// consumed and discarded; the name and its length prefix count against
// payloadLen.
func decodeCustomSection(r *reader, payloadLen uint32, payloadStart int) (*wasm.CustomSection, error) {
	nameLen, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("read size of name: %w", err)
	}

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("read bytes of name: %w", err)
	}

	remaining := int(payloadLen) - (r.read - payloadStart)
	if remaining < 0 {
		return nil, fmt.Errorf("name length %d exceeds payload length %d", nameLen, payloadLen)
	}
	if _, err := io.ReadFull(r, make([]byte, remaining)); err != nil {
		return nil, fmt.Errorf("read custom section data: %w", err)
	}
	return &wasm.CustomSection{Name: string(name)}, nil
}

func decodeTypeSection(r *reader) (*wasm.TypeSection, error) {
	vs, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	entries := make([]*wasm.FunctionType, vs)
	for i := uint32(0); i < vs; i++ {
		if entries[i], err = decodeFunctionType(r); err != nil {
			return nil, fmt.Errorf("read %d-th type: %w", i, err)
		}
	}
	return &wasm.TypeSection{Entries: entries}, nil
}

// functionTypeForm is the varint7 type-constructor tag for functions,
// 0x60 on the wire.
const functionTypeForm int8 = -0x20

func decodeFunctionType(r *reader) (*wasm.FunctionType, error) {
	form, _, err := leb128.DecodeVarint7(r)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	if form != functionTypeForm {
		return nil, fmt.Errorf("invalid function type form: %d", form)
	}

	paramCount, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("read parameter count: %w", err)
	}
	params, err := decodeValueTypes(r, paramCount)
	if err != nil {
		return nil, fmt.Errorf("read parameter types: %w", err)
	}

	hasResult, _, err := leb128.DecodeVaruint1(r)
	if err != nil {
		return nil, fmt.Errorf("read result count: %w", err)
	}

	ft := &wasm.FunctionType{Form: form, Params: params}
	if hasResult == 1 {
		result, err := decodeValueType(r)
		if err != nil {
			return nil, fmt.Errorf("read result type: %w", err)
		}
		ft.Result = &result
	}
	return ft, nil
}

func decodeFunctionSection(r *reader) (*wasm.FunctionSection, error) {
	vs, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	types := make([]uint32, vs)
	for i := uint32(0); i < vs; i++ {
		if types[i], _, err = leb128.DecodeVaruint32(r); err != nil {
			return nil, fmt.Errorf("get type index: %w", err)
		}
	}
	return &wasm.FunctionSection{Types: types}, nil
}

func decodeMemorySection(r *reader) (*wasm.MemorySection, error) {
	vs, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	entries := make([]*wasm.MemoryType, vs)
	for i := uint32(0); i < vs; i++ {
		if entries[i], err = decodeMemoryType(r); err != nil {
			return nil, fmt.Errorf("read memory type: %w", err)
		}
	}
	return &wasm.MemorySection{Entries: entries}, nil
}

func decodeMemoryType(r *reader) (*wasm.MemoryType, error) {
	limits, err := decodeResizableLimits(r)
	if err != nil {
		return nil, err
	}
	return &wasm.MemoryType{Limits: *limits}, nil
}

// decodeResizableLimits reads the single-byte flag form: a maximum is
// present iff the flag equals 1.
func decodeResizableLimits(r *reader) (*wasm.ResizableLimits, error) {
	flag, _, err := leb128.DecodeVaruint1(r)
	if err != nil {
		return nil, fmt.Errorf("read limits flag: %w", err)
	}

	ret := &wasm.ResizableLimits{}
	if ret.Initial, _, err = leb128.DecodeVaruint32(r); err != nil {
		return nil, fmt.Errorf("read min of limit: %w", err)
	}
	if flag == 1 {
		m, _, err := leb128.DecodeVaruint32(r)
		if err != nil {
			return nil, fmt.Errorf("read max of limit: %w", err)
		}
		ret.Max = &m
	}
	return ret, nil
}

func decodeExportSection(r *reader) (*wasm.ExportSection, error) {
	vs, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	entries := make([]*wasm.ExportEntry, vs)
	for i := uint32(0); i < vs; i++ {
		if entries[i], err = decodeExportEntry(r); err != nil {
			return nil, fmt.Errorf("read export: %w", err)
		}
	}
	return &wasm.ExportSection{Entries: entries}, nil
}

func decodeExportEntry(r *reader) (*wasm.ExportEntry, error) {
	name, err := decodeName(r)
	if err != nil {
		return nil, err
	}

	b := make([]byte, 1)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read export kind: %w", err)
	}
	switch b[0] {
	case wasm.ExternalKindFunction, wasm.ExternalKindTable, wasm.ExternalKindMemory, wasm.ExternalKindGlobal:
	default:
		return nil, &InvalidExternalKindError{Raw: b[0]}
	}

	index, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("read export index: %w", err)
	}
	return &wasm.ExportEntry{Name: name, Kind: b[0], Index: index}, nil
}

func decodeStartSection(r *reader) (*wasm.StartSection, error) {
	index, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("read start function index: %w", err)
	}
	return &wasm.StartSection{Index: index}, nil
}

func decodeCodeSection(r *reader) (*wasm.CodeSection, error) {
	vs, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of vector: %w", err)
	}

	bodies := make([]*wasm.FunctionBody, vs)
	for i := uint32(0); i < vs; i++ {
		if bodies[i], err = decodeFunctionBody(r); err != nil {
			return nil, fmt.Errorf("read %d-th code segment: %w", i, err)
		}
	}
	return &wasm.CodeSection{Bodies: bodies}, nil
}

func decodeFunctionBody(r *reader) (*wasm.FunctionBody, error) {
	// The body size prefix is not used to delimit the body; opcodes are read
	// up to the end marker. The section-level length check still applies.
	if _, _, err := leb128.DecodeVaruint32(r); err != nil {
		return nil, fmt.Errorf("get the size of code: %w", err)
	}

	localCount, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get the size of locals: %w", err)
	}

	locals := make([]*wasm.LocalEntry, localCount)
	for i := uint32(0); i < localCount; i++ {
		if locals[i], err = decodeLocalEntry(r); err != nil {
			return nil, fmt.Errorf("read %d-th local: %w", i, err)
		}
	}

	var code []byte
	b := make([]byte, 1)
	for {
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		if b[0] == wasm.OpcodeEnd {
			break
		}
		code = append(code, b[0])
	}
	return &wasm.FunctionBody{Locals: locals, Code: code}, nil
}

func decodeLocalEntry(r *reader) (*wasm.LocalEntry, error) {
	count, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("read n of locals: %w", err)
	}
	ty, err := decodeValueType(r)
	if err != nil {
		return nil, fmt.Errorf("read type of local: %w", err)
	}
	return &wasm.LocalEntry{Count: count, Type: ty}, nil
}

func decodeUnknownSection(r *reader, id uint32, payloadLen uint32) (*wasm.UnknownSection, error) {
	if _, err := io.ReadFull(r, make([]byte, payloadLen)); err != nil {
		return nil, fmt.Errorf("skip section payload: %w", err)
	}
	return &wasm.UnknownSection{ID: wasm.SectionID(id)}, nil
}
