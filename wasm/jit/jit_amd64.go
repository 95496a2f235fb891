//go:build amd64

package jit

// This file implements the compiler for the amd64/x86_64 target. Note that
// the x86 pkg prefixes all instructions with "A", e.g. MOVQ is given as
// x86.AMOVQ.

import (
	"fmt"

	asm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/x86"
)

// nativecall is implemented in jit_amd64.s as a Go Assembler function. It
// enters the compiled code at codeSegment; the code's final RET comes back
// here and whatever it left in RAX is returned.
func nativecall(codeSegment uintptr) uint64

func newCompiler() (compiler, error) {
	b, err := asm.NewBuilder("amd64", 64)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	return &amd64Compiler{builder: b}, nil
}

type amd64Compiler struct {
	builder *asm.Builder
}

func (c *amd64Compiler) newProg() *obj.Prog {
	return c.builder.NewProg()
}

func (c *amd64Compiler) addInstruction(prog *obj.Prog) {
	c.builder.AddInstruction(prog)
}

// emitPreamble implements compiler.emitPreamble for the amd64 architecture.
//
//	xorq rax, rax
func (c *amd64Compiler) emitPreamble() {
	prog := c.newProg()
	prog.As = x86.AXORQ
	prog.From.Type = obj.TYPE_REG
	prog.From.Reg = x86.REG_AX
	prog.To.Type = obj.TYPE_REG
	prog.To.Reg = x86.REG_AX
	c.addInstruction(prog)
}

// compileNop implements compiler.compileNop for the amd64 architecture.
func (c *amd64Compiler) compileNop() {
	prog := c.newProg()
	prog.As = obj.ANOP
	c.addInstruction(prog)
}

// compileReturn implements compiler.compileReturn for the amd64 architecture.
//
//	ret
func (c *amd64Compiler) compileReturn() {
	prog := c.newProg()
	prog.As = obj.ARET
	c.addInstruction(prog)
}

// compile implements compiler.compile for the amd64 architecture.
func (c *amd64Compiler) compile() ([]byte, error) {
	return mmapCodeSegment(c.builder.Assemble())
}
