//go:build darwin || linux || freebsd

package jit

import "golang.org/x/sys/unix"

// mmapCodeSegment copies the assembled code into a new anonymous mapping
// marked executable and returns the mapping.
func mmapCodeSegment(code []byte) ([]byte, error) {
	mmapFunc, err := unix.Mmap(
		-1,
		0,
		len(code),
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, err
	}
	copy(mmapFunc, code)
	return mmapFunc, nil
}

func munmapCodeSegment(code []byte) error {
	return unix.Munmap(code)
}
