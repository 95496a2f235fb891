package jit

// compiler is the interface of the architecture-specific native code
// compiler. The compileXXX methods append the fixed native translation of
// one opcode to a growable code buffer: stream position in, instructions
// appended out, no shared state with the driving loop.
type compiler interface {
	// emitPreamble is called once before any opcode is translated. It zeroes
	// the return register so the boolean-like result of the entry call is
	// deterministic.
	emitPreamble()
	// compileNop translates wasm.OpcodeNop.
	compileNop()
	// compileReturn translates wasm.OpcodeReturn.
	compileReturn()
	// compile assembles everything appended so far and copies it into an
	// executable region, returning the region.
	compile() (code []byte, err error)
}
