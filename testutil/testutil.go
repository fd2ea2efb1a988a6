package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with pseudo-random bytes.
// Locks only once per call (preferred over per-byte calls in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(dst) // nolint errcheck // never fails per math/rand contract
}

// Pattern returns n bytes of the repeating sequence 0x01, 0x02, ... 0xFF,
// 0x01, ... Distinct adjacent values make shifted or duplicated bytes in a
// copy result visible at a glance.
func Pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i%255) + 1
	}
	return out
}

// RefCopy is the trusted reference for ascending non-overlapping copy:
// a plain byte loop. It returns the number of bytes copied.
func RefCopy(dst, src []byte) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// RefMove is the trusted reference for overlap-safe move semantics: the
// source is materialized in full before the destination is written.
// It returns the number of bytes moved.
func RefMove(dst, src []byte) int {
	n := min(len(dst), len(src))
	tmp := make([]byte, n)
	copy(tmp, src[:n])
	copy(dst[:n], tmp)
	return n
}
