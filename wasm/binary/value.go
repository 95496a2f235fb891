package binary

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/motorwasm/motor/wasm"
	"github.com/motorwasm/motor/wasm/leb128"
)

// decodeValueType maps the varint7 tag to a value type. Tags are small
// negative values on the wire: -1..-4.
func decodeValueType(r *reader) (wasm.ValueType, error) {
	tag, _, err := leb128.DecodeVarint7(r)
	if err != nil {
		return 0, fmt.Errorf("read value type: %w", err)
	}
	switch tag {
	case -0x01:
		return wasm.ValueTypeI32, nil
	case -0x02:
		return wasm.ValueTypeI64, nil
	case -0x03:
		return wasm.ValueTypeF32, nil
	case -0x04:
		return wasm.ValueTypeF64, nil
	}
	return 0, &InvalidValueTypeError{Raw: tag}
}

func decodeValueTypes(r *reader, num uint32) ([]wasm.ValueType, error) {
	ret := make([]wasm.ValueType, num)
	for i := uint32(0); i < num; i++ {
		vt, err := decodeValueType(r)
		if err != nil {
			return nil, err
		}
		ret[i] = vt
	}
	return ret, nil
}

// decodeName reads a length-prefixed name and requires it to be valid UTF-8.
func decodeName(r *reader) (string, error) {
	size, _, err := leb128.DecodeVaruint32(r)
	if err != nil {
		return "", fmt.Errorf("read size of name: %w", err)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read bytes of name: %w", err)
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("name must be valid as utf8")
	}
	return string(buf), nil
}
