package guard

import "sync/atomic"

// Buffer is an n-byte region whose last byte is adjacent to an inaccessible
// page. It owns the underlying mapping and is responsible for releasing it.
type Buffer struct {
	data   []byte
	raw    []byte
	closed atomic.Bool
	// release is the platform-specific function to unmap the memory.
	release func([]byte) error
}

// Alloc returns a Buffer of the given size ending exactly at a guard page.
func Alloc(size int) (*Buffer, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Buffer{}, nil
	}
	return alloc(size)
}

// Bytes returns the guarded region. The slice becomes invalid after Close.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Close releases the mapping. It is safe to call multiple times.
func (b *Buffer) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	if b.release == nil {
		return nil
	}
	return b.release(b.raw)
}
