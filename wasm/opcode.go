package wasm

type Opcode = byte

// The opcode bytes the engine knows by name. OpcodeEnd terminates a function
// body and never appears inside FunctionBody.Code; the JIT recognizes the
// rest opcode-by-opcode.
const (
	OpcodeUnreachable Opcode = 0x00
	OpcodeNop         Opcode = 0x01
	OpcodeEnd         Opcode = 0x0b
	OpcodeReturn      Opcode = 0x0f
)
