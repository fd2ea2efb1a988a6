package kernel

import (
	"runtime"
	"unsafe"
)

const (
	// WordSize is the native machine word size in bytes (4 or 8).
	WordSize = int(unsafe.Sizeof(uintptr(0)))

	// WordMask extracts the alignment offset of an address.
	WordMask = WordSize - 1

	// minThreshold is the smallest count for which word-wise copy setup pays
	// off. Below it the kernels run the byte remainder loop only.
	minThreshold = uintptr(2 * WordSize)
)

// EfficientUnalignedAccess reports whether the target executes misaligned
// word loads and stores correctly and without a meaningful penalty. The list
// mirrors the architectures for which the Go runtime itself issues unaligned
// word access. runtime.GOARCH is a compile-time constant, so the unused
// kernel path is eliminated by the compiler.
const EfficientUnalignedAccess = runtime.GOARCH == "386" ||
	runtime.GOARCH == "amd64" ||
	runtime.GOARCH == "arm64" ||
	runtime.GOARCH == "ppc64" ||
	runtime.GOARCH == "ppc64le" ||
	runtime.GOARCH == "s390x"

// BigEndian is true on the big-endian ports. The shifted-word merge in
// memcpyAligning composes output words with little-endian shift directions,
// so it is disabled when BigEndian is set.
const BigEndian = runtime.GOARCH == "mips" ||
	runtime.GOARCH == "mips64" ||
	runtime.GOARCH == "ppc64" ||
	runtime.GOARCH == "s390x"
