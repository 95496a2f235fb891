// Package binary decodes the WebAssembly binary format into the wasm model.
// Every decode failure aborts the whole module parse: no partial module is
// ever returned.
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/motorwasm/motor/wasm"
	"github.com/motorwasm/motor/wasm/leb128"
)

// reader counts consumed bytes so section payload lengths can be enforced
// against what the sub-decoders actually read.
type reader struct {
	buffer *bytes.Buffer
	read   int
}

func (r *reader) Read(p []byte) (n int, err error) {
	n, err = r.buffer.Read(p)
	r.read += n
	return
}

// DecodeModule decodes a whole module image: header first, then sections in
// encounter order until the stream ends.
func DecodeModule(input []byte) (*wasm.Module, error) {
	r := &reader{buffer: bytes.NewBuffer(input)}

	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read magic number: %w", err)
	}
	magic := binary.LittleEndian.Uint32(buf)
	if magic != wasm.Magic {
		return nil, &BadMagicError{Actual: magic}
	}

	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	}
	version := binary.LittleEndian.Uint32(buf)
	if version != wasm.Version {
		return nil, &UnsupportedVersionError{Actual: version}
	}

	m := &wasm.Module{MagicNumber: magic, Version: version}
	for {
		section, err := decodeSection(r)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		m.Sections = append(m.Sections, section)
	}
	return m, nil
}

// decodeSection reads one section. It returns io.EOF only when the stream is
// cleanly exhausted, i.e. not a single byte of the next section id was
// available; a stream that ends anywhere else is a truncation error.
func decodeSection(r *reader) (wasm.Section, error) {
	idStart := r.read
	id, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		if errors.Is(err, io.EOF) && r.read == idStart {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read section id: %w", err)
	}

	payloadLen, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return nil, fmt.Errorf("get size of section for id=%d: %w", id, err)
	}

	payloadStart := r.read
	var section wasm.Section
	switch id {
	case uint32(wasm.SectionIDCustom):
		section, err = decodeCustomSection(r, payloadLen, payloadStart)
	case uint32(wasm.SectionIDType):
		section, err = decodeTypeSection(r)
	case uint32(wasm.SectionIDFunction):
		section, err = decodeFunctionSection(r)
	case uint32(wasm.SectionIDMemory):
		section, err = decodeMemorySection(r)
	case uint32(wasm.SectionIDExport):
		section, err = decodeExportSection(r)
	case uint32(wasm.SectionIDStart):
		section, err = decodeStartSection(r)
	case uint32(wasm.SectionIDCode):
		section, err = decodeCodeSection(r)
	default:
		section, err = decodeUnknownSection(r, id, payloadLen)
	}
	if err != nil {
		return nil, fmt.Errorf("section ID %d: %w", id, err)
	}

	if payloadStart+int(payloadLen) != r.read {
		return nil, fmt.Errorf("section ID %d: invalid section length: expected to be %d but got %d", id, payloadLen, r.read-payloadStart)
	}
	return section, nil
}
