package kernel

import "unsafe"

// Memcpy copies n bytes from src to dst in ascending address order and
// returns dst. The regions must not overlap unless dst is at a lower address
// than src; Memmove handles the general case.
//
// SAFETY: No bounds checks are performed. The caller guarantees both regions
// are valid for n bytes.
func Memcpy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	if EfficientUnalignedAccess {
		return memcpyUnaligned(dst, src, n)
	}
	return memcpyAligning(dst, src, n)
}

// memcpyUnaligned is the copy kernel for hardware that tolerates misaligned
// word access: whole words are transferred without any alignment fixup.
func memcpyUnaligned(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	d, s := dst, src

	if n >= minThreshold {
		for ; n >= uintptr(WordSize); n -= uintptr(WordSize) {
			storeWord(d, loadWord(s))
			d = unsafe.Add(d, WordSize)
			s = unsafe.Add(s, WordSize)
		}
	}

	for ; n > 0; n-- {
		storeByte(d, loadByte(s))
		d = unsafe.Add(d, 1)
		s = unsafe.Add(s, 1)
	}

	return dst
}

// memcpyAligning is the copy kernel for hardware that penalizes or faults on
// misaligned word access. It aligns the destination byte-by-byte, then moves
// whole words: directly when source and destination share an alignment, or
// via a shifted merge of two adjacent aligned source words when they do not.
func memcpyAligning(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	d, s := dst, src

	if n >= minThreshold {
		// Copy a byte at a time until the destination is word-aligned.
		for ; addr(d)&uintptr(WordMask) != 0; n-- {
			storeByte(d, loadByte(s))
			d = unsafe.Add(d, 1)
			s = unsafe.Add(s, 1)
		}

		// Residual misalignment of the source now that the destination
		// sits on a word boundary.
		distance := addr(s) & uintptr(WordMask)

		if distance != 0 && !BigEndian {
			// The source is distance bytes past its own word boundary.
			// Step it back to the boundary and rebuild each output word
			// from the two aligned source words that straddle it. The
			// shift directions assume little-endian byte order.
			s = unsafe.Add(s, -int(distance))

			next := loadWord(s)
			for ; n >= uintptr(WordSize+WordMask); n -= uintptr(WordSize) {
				last := next
				next = loadWord(unsafe.Add(s, WordSize))

				storeWord(d, last>>(distance*8)|next<<((uintptr(WordSize)-distance)*8))

				d = unsafe.Add(d, WordSize)
				s = unsafe.Add(s, WordSize)
			}

			// Restore the original source offset for the remainder loop.
			s = unsafe.Add(s, int(distance))
		} else if distance == 0 {
			// Source and destination alignments agree: plain word copy.
			for ; n >= uintptr(WordSize); n -= uintptr(WordSize) {
				storeWord(d, loadWord(s))
				d = unsafe.Add(d, WordSize)
				s = unsafe.Add(s, WordSize)
			}
		}
		// distance != 0 on big-endian: no word path applies, the remainder
		// loop below moves everything byte-wise.
	}

	for ; n > 0; n-- {
		storeByte(d, loadByte(s))
		d = unsafe.Add(d, 1)
		s = unsafe.Add(s, 1)
	}

	return dst
}
