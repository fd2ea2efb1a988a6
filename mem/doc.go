// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// AllocAligned returns cache-line aligned buffers for predictable kernel
// benchmarks. AllocOffset places a buffer at a chosen alignment residue,
// which is how the copy tests drive every (source, destination) alignment
// combination deterministically.
package mem
