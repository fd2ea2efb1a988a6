package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)

	x := make([]byte, 64)
	y := make([]byte, 64)
	a.FillBytes(x)
	b.FillBytes(y)

	assert.Equal(t, x, y)
	assert.EqualValues(t, 99, a.Seed())

	a.Reset()
	z := make([]byte, 64)
	a.FillBytes(z)
	assert.Equal(t, x, z)
}

func TestPattern(t *testing.T) {
	p := Pattern(300)
	require.Len(t, p, 300)

	assert.EqualValues(t, 0x01, p[0])
	assert.EqualValues(t, 0x13, p[18])
	for i := 1; i < len(p); i++ {
		require.NotEqual(t, p[i-1], p[i], "adjacent bytes must differ at %d", i)
	}
}

func TestRefMoveOverlap(t *testing.T) {
	buf := Pattern(10)
	RefMove(buf[2:], buf[:8])

	want := Pattern(10)[:2]
	want = append(want, Pattern(10)[:8]...)
	assert.Equal(t, want, buf)
}
