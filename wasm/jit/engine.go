// Package jit translates a function body's opcode stream into native machine
// instructions and executes the result. Translation is done opcode by opcode
// through an architecture-specific compiler; the assembled buffer is
// finalized into executable memory and entered through a small assembly
// trampoline.
package jit

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"go.uber.org/zap"

	"github.com/motorwasm/motor/wasm"
)

// UnsupportedOpcodeError is returned by Compile for any opcode byte outside
// the translation table. Offset is the byte's position within the body's
// opcode stream.
type UnsupportedOpcodeError struct {
	Opcode wasm.Opcode
	Offset int
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("unsupported opcode %#02x at offset %d", e.Opcode, e.Offset)
}

// ErrClosed is returned by Call after the executable region was released.
var ErrClosed = errors.New("jit: compiled function is closed")

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compile translates body's opcode stream into a CompiledFunction. Each
// recognized opcode appends its fixed native translation to the code buffer,
// so new opcodes can be added to the dispatch below without touching the
// loop. Reaching the end of the body behaves as a return, which also gives an
// empty body a valid translation.
func (e *Engine) Compile(body *wasm.FunctionBody) (*CompiledFunction, error) {
	c, err := newCompiler()
	if err != nil {
		return nil, err
	}

	c.emitPreamble()
	for offset, op := range body.Code {
		switch op {
		case wasm.OpcodeNop:
			c.compileNop()
		case wasm.OpcodeReturn:
			c.compileReturn()
		default:
			return nil, &UnsupportedOpcodeError{Opcode: op, Offset: offset}
		}
	}
	c.compileReturn()

	code, err := c.compile()
	if err != nil {
		return nil, fmt.Errorf("failed to finalize code segment: %w", err)
	}

	logger.Debug("compiled function body",
		zap.Int("opcodes", len(body.Code)),
		zap.Int("code_bytes", len(code)),
		zap.String("arch", runtime.GOARCH),
	)

	return &CompiledFunction{
		codeSegment:        code,
		codeInitialAddress: uintptr(unsafe.Pointer(&code[0])),
	}, nil
}

// CompiledFunction owns an executable code region and the entry address
// within it. The region stays mapped until Close; Call never outlives it.
type CompiledFunction struct {
	// codeSegment is the executable mapping holding the compiled native code.
	codeSegment []byte
	// codeInitialAddress is the entry point, the address of codeSegment[0].
	// The function's instructions begin at offset zero because each body is
	// compiled into its own segment.
	codeInitialAddress uintptr
}

// Call invokes the compiled entry point: zero arguments in, the value left
// in the platform return register out. The call is synchronous and blocking.
func (f *CompiledFunction) Call() (uint64, error) {
	if f.codeSegment == nil {
		return 0, ErrClosed
	}
	ret := nativecall(f.codeInitialAddress)
	// The mapping must stay alive for the whole native call.
	runtime.KeepAlive(f.codeSegment)
	return ret, nil
}

// Close releases the executable region. The function cannot be called again
// afterwards; Close is idempotent.
func (f *CompiledFunction) Close() error {
	if f.codeSegment == nil {
		return nil
	}
	code := f.codeSegment
	f.codeSegment = nil
	f.codeInitialAddress = 0
	return munmapCodeSegment(code)
}
