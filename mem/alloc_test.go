package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 7, 64, 100, 4096} {
		buf := AllocAligned(size)
		require.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr&(Alignment-1), "size=%d addr=%#x", size, addr)
	}

	assert.Nil(t, AllocAligned(0))
}

func TestAllocOffset(t *testing.T) {
	for _, align := range []int{2, 8, 64} {
		for offset := 0; offset < align; offset++ {
			buf := AllocOffset(100, align, offset)
			require.Len(t, buf, 100)

			addr := uintptr(unsafe.Pointer(&buf[0]))
			assert.EqualValues(t, offset, addr&uintptr(align-1), "align=%d offset=%d", align, offset)
		}
	}
}

func TestAllocOffsetWritable(t *testing.T) {
	buf := AllocOffset(256, 8, 5)
	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		require.EqualValues(t, byte(i), buf[i])
	}
}

func TestAllocOffsetInvalid(t *testing.T) {
	assert.Panics(t, func() { AllocOffset(10, 0, 0) })
	assert.Panics(t, func() { AllocOffset(10, 3, 0) })
	assert.Panics(t, func() { AllocOffset(10, 8, 8) })
	assert.Panics(t, func() { AllocOffset(10, 8, -1) })
}

func TestAllocOffsetZeroSize(t *testing.T) {
	assert.Nil(t, AllocOffset(0, 8, 0))
	assert.Empty(t, AllocOffset(0, 8, 3))
}
