//go:build unix

package guard

import (
	"os"

	"golang.org/x/sys/unix"
)

func alloc(size int) (*Buffer, error) {
	pageSize := os.Getpagesize()
	pages := (size + pageSize - 1) / pageSize

	// One extra page at the end, mapped then revoked.
	raw, err := unix.Mmap(-1, 0, (pages+1)*pageSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	if err := unix.Mprotect(raw[pages*pageSize:], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(raw)
		return nil, err
	}

	return &Buffer{
		data:    raw[pages*pageSize-size : pages*pageSize],
		raw:     raw,
		release: unix.Munmap,
	}, nil
}
