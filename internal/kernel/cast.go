package kernel

import "unsafe"

// This file is the only place in the package that reinterprets raw memory.
// Everything else manipulates opaque unsafe.Pointer values through these
// helpers plus unsafe.Add.

// addr exposes a pointer as an integer for alignment arithmetic and ordering
// comparisons. The result must never be converted back to a pointer.
func addr(p unsafe.Pointer) uintptr {
	return uintptr(p)
}

// loadByte reads the byte at p.
func loadByte(p unsafe.Pointer) byte {
	return *(*byte)(p)
}

// storeByte writes b to the byte at p.
func storeByte(p unsafe.Pointer, b byte) {
	*(*byte)(p) = b
}

// loadWord reads the machine word at p. p must be word-aligned unless
// EfficientUnalignedAccess is true.
func loadWord(p unsafe.Pointer) uintptr {
	return *(*uintptr)(p)
}

// storeWord writes w to the machine word at p. p must be word-aligned unless
// EfficientUnalignedAccess is true.
func storeWord(p unsafe.Pointer, w uintptr) {
	*(*uintptr)(p) = w
}
