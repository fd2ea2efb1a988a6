package kernel

import "unsafe"

// onesPerByte has the low bit of every byte set; multiplying by a byte value
// replicates that value across all byte lanes of a word.
const onesPerByte = ^uintptr(0) / 0xff

// Memset fills the n bytes at dst with c and returns dst.
//
// The word loop stores a byte-replicated word per iteration. Unlike Memcpy
// there is no source to track, so the only alignment concern is the
// destination itself, and the fixup is skipped entirely on hardware with
// efficient unaligned access.
func Memset(dst unsafe.Pointer, c byte, n uintptr) unsafe.Pointer {
	d := dst

	if n >= minThreshold {
		if !EfficientUnalignedAccess {
			for ; addr(d)&uintptr(WordMask) != 0; n-- {
				storeByte(d, c)
				d = unsafe.Add(d, 1)
			}
		}

		w := uintptr(c) * onesPerByte
		for ; n >= uintptr(WordSize); n -= uintptr(WordSize) {
			storeWord(d, w)
			d = unsafe.Add(d, WordSize)
		}
	}

	for ; n > 0; n-- {
		storeByte(d, c)
		d = unsafe.Add(d, 1)
	}

	return dst
}
