// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of AllocAligned buffers. 64 bytes matches
// modern CPU cache line sizes.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	// We need enough space to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size)]
}

// AllocOffset allocates a byte slice of the given size whose base address is
// congruent to offset modulo align. align must be a power of two and offset
// must be in [0, align). It panics on invalid arguments, as misuse is a
// programming error rather than a runtime condition.
func AllocOffset(size, align, offset int) []byte {
	if align <= 0 || align&(align-1) != 0 {
		panic("mem: align must be a power of two")
	}
	if offset < 0 || offset >= align {
		panic("mem: offset out of range")
	}
	if size == 0 && offset == 0 {
		return nil
	}

	// Worst case we shift the start by align-1 bytes past the next boundary.
	buf := make([]byte, size+2*align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	mask := uintptr(align - 1)
	skip := (uintptr(align) - (addr & mask)) & mask // distance to next boundary
	start := skip + uintptr(offset)

	return buf[start : start+uintptr(size)]
}
