// Package motor is a runtime for executing WebAssembly programs: it decodes
// a binary module image, locates the designated start function, JIT-compiles
// it to native code and invokes it.
package motor

import (
	"fmt"

	"github.com/motorwasm/motor/wasm"
	"github.com/motorwasm/motor/wasm/binary"
	"github.com/motorwasm/motor/wasm/jit"
)

// Parse decodes a binary module image into its structural representation
// without executing anything.
func Parse(input []byte) (*wasm.Module, error) {
	return binary.DecodeModule(input)
}

// Run decodes input, JIT-compiles the module's start function and invokes
// it. The executable code region lives only for the duration of the call.
func Run(input []byte) error {
	module, err := binary.DecodeModule(input)
	if err != nil {
		return fmt.Errorf("parse module: %w", err)
	}

	start, err := module.FindStartFunction()
	if err != nil {
		return err
	}

	// The trampoline's calling convention takes no arguments, so refuse a
	// start function whose declared signature has parameters.
	if ft, err := module.StartFunctionType(); err != nil {
		return err
	} else if ft != nil && len(ft.Params) > 0 {
		return fmt.Errorf("start function declares %d parameters: only zero-argument entry points are supported", len(ft.Params))
	}

	f, err := jit.NewEngine().Compile(start)
	if err != nil {
		return fmt.Errorf("compile start function: %w", err)
	}
	defer f.Close()

	_, err = f.Call()
	return err
}
