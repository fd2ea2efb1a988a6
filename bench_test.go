package memkit

import (
	"fmt"
	"testing"

	"github.com/hupe1980/memkit/mem"
	"github.com/hupe1980/memkit/testutil"
)

var benchSizes = []int{32, 256, 4096, 1 << 20}

func BenchmarkCopy(b *testing.B) {
	for _, size := range benchSizes {
		for _, align := range []int{0, 1} {
			b.Run(fmt.Sprintf("size=%d/srcAlign=%d", size, align), func(b *testing.B) {
				rng := testutil.NewRNG(1)
				src := mem.AllocOffset(size, WordSize, align)
				rng.FillBytes(src)
				dst := mem.AllocOffset(size, WordSize, 0)

				b.SetBytes(int64(size))
				b.ResetTimer()
				for b.Loop() {
					Copy(dst, src)
				}
			})
		}
	}
}

// BenchmarkBuiltinCopy is the baseline: the runtime's assembly memmove.
func BenchmarkBuiltinCopy(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			rng := testutil.NewRNG(1)
			src := mem.AllocOffset(size, WordSize, 0)
			rng.FillBytes(src)
			dst := mem.AllocOffset(size, WordSize, 0)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				copy(dst, src)
			}
		})
	}
}

func BenchmarkMoveOverlapping(b *testing.B) {
	for _, size := range []int{256, 4096, 1 << 20} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			buf := testutil.Pattern(size + WordSize)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				Move(buf[WordSize:], buf[:size]) // forces the backward path
			}
		})
	}
}

func BenchmarkFill(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			dst := mem.AllocOffset(size, WordSize, 0)

			b.SetBytes(int64(size))
			b.ResetTimer()
			for b.Loop() {
				Fill(dst, 0xAA)
			}
		})
	}
}

func BenchmarkParallelCopy(b *testing.B) {
	const size = 64 << 20
	src := make([]byte, size)
	testutil.NewRNG(1).FillBytes(src)
	dst := make([]byte, size)

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.SetBytes(size)
			b.ResetTimer()
			for b.Loop() {
				ParallelCopy(dst, src, workers)
			}
		})
	}
}
