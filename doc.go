// Package memkit provides portable bulk memory primitives: non-overlapping
// copy, overlap-safe move, and fill, implemented word-at-a-time for hardware
// that handles unaligned memory access inefficiently or not at all.
//
// # Quick Start
//
//	n := memkit.Copy(dst, src)        // regions must not overlap
//	n := memkit.Move(buf[3:], buf)    // overlap allowed
//	memkit.Fill(buf, 0xAA)
//	memkit.Zero(buf)
//
// # Kernel Selection
//
// The word-wise kernel is selected at compile time per architecture: targets
// with efficient unaligned access get a raw word loop, everything else gets
// destination alignment fixup plus a shifted-word merge for mismatched
// source alignment. Set MEMKIT_KERNEL=bytewise to force the reference
// byte-wise implementation for debugging or A/B benchmarking:
//
//	MEMKIT_KERNEL=bytewise go test ./...
//
// # Large Copies
//
// ParallelCopy splits very large non-overlapping copies across an errgroup
// with word-aligned chunk boundaries. The kernels are reentrant for disjoint
// regions, so no coordination is needed beyond the join.
package memkit
