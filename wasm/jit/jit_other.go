//go:build !amd64 && !arm64

package jit

import (
	"fmt"
	"runtime"
)

func newCompiler() (compiler, error) {
	return nil, fmt.Errorf("unsupported GOARCH %s", runtime.GOARCH)
}

// nativecall is unreachable on unsupported architectures: newCompiler fails
// before any code segment exists.
func nativecall(codeSegment uintptr) uint64 {
	panic("unsupported GOARCH")
}
