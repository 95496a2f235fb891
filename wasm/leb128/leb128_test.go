package leb128

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInt32(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int32
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0xFF, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x81, 0x7f}, exp: -127},
		{bytes: []byte{0xFF, 0x7e}, exp: -129},
	} {
		actual, num, err := DecodeInt32(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestDecodeInt32_Malformed(t *testing.T) {
	// Continuation bit still set after the 5th byte.
	_, _, err := DecodeInt32(bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}))
	require.ErrorIs(t, err, ErrOverflow32)

	// Stream ends while the continuation bit demands another byte.
	_, _, err = DecodeInt32(bytes.NewReader([]byte{0x80}))
	require.Error(t, err)
}

func TestDecodeVaruint32_RoundTrip(t *testing.T) {
	for _, v := range []uint32{
		0, 1, 4, 63, 64, 127, 128, 624485,
		1<<31 - 1, 1 << 31, 0xFFFFFFFF,
	} {
		encoded := EncodeUint32(v)
		actual, num, err := DecodeVaruint32(bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, v, actual)
		assert.Equal(t, uint64(len(encoded)), num)
	}
}

func TestDecodeVarint7(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int8
	}{
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x7e}, exp: -2},
		{bytes: []byte{0x7d}, exp: -3},
		{bytes: []byte{0x7c}, exp: -4},
		{bytes: []byte{0x60}, exp: -32},
		{bytes: []byte{0x04}, exp: 4},
	} {
		actual, num, err := DecodeVarint7(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestDecodeVaruint1(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   uint8
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x01}, exp: 1},
	} {
		actual, _, err := DecodeVaruint1(bytes.NewReader(c.bytes))
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
	}
}

func TestEncodeInt32(t *testing.T) {
	for _, c := range []struct {
		value int32
		exp   []byte
	}{
		{value: 0, exp: []byte{0x00}},
		{value: 4, exp: []byte{0x04}},
		{value: 64, exp: []byte{0xc0, 0x00}},
		{value: -1, exp: []byte{0x7f}},
		{value: -127, exp: []byte{0x81, 0x7f}},
		{value: 624485, exp: []byte{0xe5, 0x8e, 0x26}},
	} {
		assert.Equal(t, c.exp, EncodeInt32(c.value))
	}
}
