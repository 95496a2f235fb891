package binary

import "fmt"

// BadMagicError is returned when the stream doesn't begin with "\0asm".
type BadMagicError struct {
	Actual uint32
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("invalid magic number: %#x", e.Actual)
}

// UnsupportedVersionError is returned when the header version isn't 1.
type UnsupportedVersionError struct {
	Actual uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version: %d", e.Actual)
}

// InvalidValueTypeError is returned for a value-type tag outside -1..-4.
type InvalidValueTypeError struct {
	Raw int8
}

func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("invalid value type: %d", e.Raw)
}

// InvalidExternalKindError is returned for an export-kind byte outside 0..3.
type InvalidExternalKindError struct {
	Raw byte
}

func (e *InvalidExternalKindError) Error() string {
	return fmt.Sprintf("invalid external kind: %#x", e.Raw)
}
