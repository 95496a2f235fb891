//go:build !darwin && !linux && !freebsd

package jit

import (
	"fmt"
	"runtime"
)

func mmapCodeSegment(code []byte) ([]byte, error) {
	return nil, fmt.Errorf("unsupported GOOS %s", runtime.GOOS)
}

func munmapCodeSegment(code []byte) error {
	return nil
}
