// Package leb128 reads and writes the variable-length integer encoding used
// throughout the binary format: each byte contributes 7 value bits plus a
// continuation bit.
package leb128

import (
	"errors"
	"fmt"
	"io"
)

// ErrOverflow32 is returned when an encoding carries more bits than fit in a
// 32-bit integer.
var ErrOverflow32 = errors.New("leb128: value overflows a 32-bit integer")

// DecodeInt32 reads a signed LEB128 value, advancing r by exactly the bytes
// consumed. num is the number of bytes read.
func DecodeInt32(r io.Reader) (ret int32, num uint64, err error) {
	const (
		int32Mask  int32 = 1 << 7
		int32Mask2       = ^int32Mask
		int32Mask3       = 1 << 6
		int32Mask4       = ^0
	)
	var shift int
	var b int32
	for shift < 35 {
		b, err = readByteAsInt32(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		num++
		ret |= (b & int32Mask2) << shift
		shift += 7
		if b&int32Mask == 0 {
			break
		}
	}
	if b&int32Mask != 0 {
		return 0, 0, ErrOverflow32
	}

	if shift < 32 && (b&int32Mask3) == int32Mask3 {
		ret |= int32Mask4 << shift
	}
	return
}

// DecodeVaruint32 decodes a signed LEB128 value and reinterprets its bit
// pattern as a uint32. Counts, indices and lengths in the binary grammar all
// go through this path, so the matching writer is EncodeUint32, not a plain
// unsigned encoder.
func DecodeVaruint32(r io.Reader) (uint32, uint64, error) {
	v, num, err := DecodeInt32(r)
	return uint32(v), num, err
}

// DecodeVarint7 decodes a signed LEB128 value narrowed to 8 bits; used for
// value-type and type-constructor tags.
func DecodeVarint7(r io.Reader) (int8, uint64, error) {
	v, num, err := DecodeInt32(r)
	return int8(v), num, err
}

// DecodeVaruint1 decodes a signed LEB128 value narrowed to an unsigned
// byte; used for one-bit flags.
func DecodeVaruint1(r io.Reader) (uint8, uint64, error) {
	v, num, err := DecodeInt32(r)
	return uint8(v), num, err
}

// EncodeInt32 writes v in the signed LEB128 form.
func EncodeInt32(v int32) (buf []byte) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
}

// EncodeUint32 writes v so that DecodeVaruint32 reads it back. This is the
// signed form of the value's bit pattern, matching the decoder's signed
// reinterpretation.
func EncodeUint32(v uint32) []byte {
	return EncodeInt32(int32(v))
}

func readByteAsInt32(r io.Reader) (int32, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return int32(b[0]), err
}
