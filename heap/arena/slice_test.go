package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_GrowsContiguously(t *testing.T) {
	s := NewSlice()

	b1, err := s.Sbrk(16)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), b1)
	assert.Equal(t, uintptr(16), s.Hi())

	b2, err := s.Sbrk(32)
	require.NoError(t, err)
	assert.Equal(t, uintptr(16), b2)
	assert.Equal(t, uintptr(48), s.Hi())
}

func TestSlice_ZeroSbrkIsNoOp(t *testing.T) {
	s := NewSlice()
	_, _ = s.Sbrk(8)
	before := s.Hi()

	base, err := s.Sbrk(0)
	require.NoError(t, err)
	assert.Equal(t, before, base)
	assert.Equal(t, before, s.Hi())
}

func TestSlice_BytesReflectsGrowth(t *testing.T) {
	s := NewSlice()
	_, _ = s.Sbrk(8)
	assert.Len(t, s.Bytes(), 8)

	_, _ = s.Sbrk(8)
	assert.Len(t, s.Bytes(), 16)
}

func TestSlice_LoIsAlwaysZero(t *testing.T) {
	s := NewSlice()
	assert.Equal(t, uintptr(0), s.Lo())
	_, _ = s.Sbrk(100)
	assert.Equal(t, uintptr(0), s.Lo())
}

func TestNewSliceWithCapacity_PreReservesWithoutGrowingHi(t *testing.T) {
	s := NewSliceWithCapacity(1 << 20)
	assert.Equal(t, uintptr(0), s.Hi())
	assert.GreaterOrEqual(t, cap(s.buf), 1<<20)
}

func TestSlice_CloseIsNoOp(t *testing.T) {
	s := NewSlice()
	_, _ = s.Sbrk(16)
	assert.NoError(t, s.Close())
	assert.Equal(t, uintptr(16), s.Hi(), "Close must not discard the backing buffer")
}
