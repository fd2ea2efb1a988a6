package kernel

import "unsafe"

// Memmove copies n bytes from src to dst and returns dst. The regions may
// overlap arbitrarily; the result is as if the source were read in full
// before any destination byte is written.
//
// When the destination lies below the source, or the regions are disjoint,
// an ascending copy is safe and the word-wise Memcpy kernel is used. When
// the destination starts inside the source region, the copy runs backward a
// byte at a time so every byte is read before it is overwritten; the
// word-wise kernel is deliberately not reused there.
func Memmove(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	if addr(dst) < addr(src) || addr(src)+n <= addr(dst) {
		return Memcpy(dst, src, n)
	}

	if addr(dst) > addr(src) {
		for i := n; i > 0; i-- {
			storeByte(unsafe.Add(dst, i-1), loadByte(unsafe.Add(src, i-1)))
		}
	}

	return dst
}
