package memkit

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMinChunk is the smallest per-worker share for which goroutine
// fan-out beats a single sequential copy.
const parallelMinChunk = 1 << 20

// ParallelCopy copies min(len(dst), len(src)) bytes from src to dst using up
// to workers goroutines and returns the number of bytes copied. workers <= 0
// selects GOMAXPROCS. Chunk boundaries are word-aligned so every worker runs
// the word kernel's fast path after its own fixup.
//
// SAFETY: Same contract as Copy - the slices must not overlap. Each worker
// touches a disjoint range, so no synchronization beyond the final join is
// required.
func ParallelCopy(dst, src []byte, workers int) int {
	n := min(len(dst), len(src))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2*parallelMinChunk {
		return Copy(dst[:n], src[:n])
	}

	chunk := n / workers
	if chunk < parallelMinChunk {
		chunk = parallelMinChunk
	}
	// Round up to a word boundary.
	chunk = (chunk + wordMask) &^ wordMask

	g := new(errgroup.Group)
	for off := 0; off < n; off += chunk {
		end := min(off+chunk, n)
		g.Go(func() error {
			Copy(dst[off:end], src[off:end])
			return nil
		})
	}
	_ = g.Wait() // workers never fail; errgroup provides the join

	return n
}

const wordMask = WordSize - 1
