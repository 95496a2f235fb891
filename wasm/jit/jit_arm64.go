//go:build arm64

package jit

// This file implements the compiler for the arm64 target. The arm64 pkg has
// different notation from the original arm64 assembly, e.g. the 64-bit
// variants ldr, str and mov all correspond to arm64.AMOVD.

import (
	"fmt"

	asm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/arm64"
)

// nativecall is implemented in jit_arm64.s as a Go Assembler function. It
// enters the compiled code at codeSegment via BLR; the code's RET branches
// back through the link register and R0 is returned.
func nativecall(codeSegment uintptr) uint64

func newCompiler() (compiler, error) {
	b, err := asm.NewBuilder("arm64", 64)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	return &arm64Compiler{builder: b}, nil
}

type arm64Compiler struct {
	builder *asm.Builder
}

func (c *arm64Compiler) newProg() *obj.Prog {
	return c.builder.NewProg()
}

func (c *arm64Compiler) addInstruction(prog *obj.Prog) {
	c.builder.AddInstruction(prog)
}

// emitPreamble implements compiler.emitPreamble for the arm64 architecture.
//
//	mov x0, xzr
func (c *arm64Compiler) emitPreamble() {
	prog := c.newProg()
	prog.As = arm64.AMOVD
	prog.From.Type = obj.TYPE_REG
	prog.From.Reg = arm64.REGZERO
	prog.To.Type = obj.TYPE_REG
	prog.To.Reg = arm64.REG_R0
	c.addInstruction(prog)
}

// compileNop implements compiler.compileNop for the arm64 architecture.
func (c *arm64Compiler) compileNop() {
	prog := c.newProg()
	prog.As = obj.ANOP
	c.addInstruction(prog)
}

// compileReturn implements compiler.compileReturn for the arm64 architecture.
//
//	ret
func (c *arm64Compiler) compileReturn() {
	prog := c.newProg()
	prog.As = obj.ARET
	c.addInstruction(prog)
}

// compile implements compiler.compile for the arm64 architecture.
func (c *arm64Compiler) compile() ([]byte, error) {
	return mmapCodeSegment(c.builder.Assemble())
}
