package memkit

import (
	"os"
	"strings"
	"unsafe"

	"github.com/hupe1980/memkit/internal/kernel"
)

// WordSize is the native machine word size in bytes (4 or 8).
const WordSize = kernel.WordSize

// Kernel identifies a copy/move/fill implementation.
type Kernel uint8

const (
	// KernelWord is the word-at-a-time implementation (default).
	KernelWord Kernel = iota
	// KernelBytewise is the reference byte-by-byte implementation.
	KernelBytewise
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case KernelWord:
		return "word"
	case KernelBytewise:
		return "bytewise"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return KernelWord, true
	case "bytewise":
		return KernelBytewise, true
	default:
		return KernelWord, false
	}
}

// Package-level state - bound once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	activeKernel Kernel
	hasOverride  bool

	copyImpl func(dst, src []byte) int
	moveImpl func(dst, src []byte) int
	fillImpl func(dst []byte, c byte)
)

func init() {
	activeKernel = KernelWord
	if override := os.Getenv("MEMKIT_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok {
			activeKernel = k
			hasOverride = true
		}
	}

	switch activeKernel {
	case KernelBytewise:
		copyImpl = copyBytewise
		moveImpl = moveBytewise
		fillImpl = fillBytewise
	default:
		copyImpl = copyWord
		moveImpl = moveWord
		fillImpl = fillWord
	}
}

// ActiveKernel returns the kernel selected at init.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if MEMKIT_KERNEL was set to a valid kernel name.
func IsOverridden() bool {
	return hasOverride
}

// EfficientUnalignedAccess reports whether the target architecture tolerates
// misaligned word access, i.e. whether the word kernel skips alignment fixup.
func EfficientUnalignedAccess() bool {
	return kernel.EfficientUnalignedAccess
}

// BigEndian reports whether the target stores words most significant byte
// first, which disables the shifted-word merge path.
func BigEndian() bool {
	return kernel.BigEndian
}

// Copy copies min(len(dst), len(src)) bytes from src to dst in ascending
// address order and returns the number of bytes copied.
//
// SAFETY: The slices must not overlap, except that dst may begin at a lower
// address than src. Use Move when the overlap relationship is unknown.
func Copy(dst, src []byte) int {
	return copyImpl(dst, src)
}

// Move copies min(len(dst), len(src)) bytes from src to dst and returns the
// number of bytes copied. The slices may overlap arbitrarily; the result is
// as if src were read in full before dst is written.
func Move(dst, src []byte) int {
	return moveImpl(dst, src)
}

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	fillImpl(dst, c)
}

// Zero sets every byte of dst to zero.
func Zero(dst []byte) {
	fillImpl(dst, 0)
}

func copyWord(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	kernel.Memcpy(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
	return n
}

func moveWord(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	kernel.Memmove(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), uintptr(n))
	return n
}

func fillWord(dst []byte, c byte) {
	if len(dst) == 0 {
		return
	}
	kernel.Memset(unsafe.Pointer(&dst[0]), c, uintptr(len(dst)))
}

func copyBytewise(dst, src []byte) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

func moveBytewise(dst, src []byte) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	// Same direction selection as the kernel, byte-granular throughout.
	if uintptr(unsafe.Pointer(&dst[0])) <= uintptr(unsafe.Pointer(&src[0])) ||
		uintptr(unsafe.Pointer(&src[0]))+uintptr(n) <= uintptr(unsafe.Pointer(&dst[0])) {
		for i := 0; i < n; i++ {
			dst[i] = src[i]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			dst[i] = src[i]
		}
	}
	return n
}

func fillBytewise(dst []byte, c byte) {
	for i := range dst {
		dst[i] = c
	}
}
