package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise NewMapped through the Arena interface only, so they
// run unmodified against the mmap-backed implementation on Linux and
// Darwin and against the Slice-backed fallback everywhere else.

func TestMapped_InitialCapacityStartsAtZeroUsed(t *testing.T) {
	a, err := NewMapped(1 << 12)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, uintptr(0), a.Hi())
	assert.Equal(t, uintptr(0), a.Lo())
}

func TestMapped_SbrkGrowsContiguously(t *testing.T) {
	a, err := NewMapped(0)
	require.NoError(t, err)
	defer a.Close()

	b1, err := a.Sbrk(64)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), b1)

	b2, err := a.Sbrk(128)
	require.NoError(t, err)
	assert.Equal(t, uintptr(64), b2)
	assert.Equal(t, uintptr(192), a.Hi())
}

func TestMapped_GrowthBeyondInitialReservationPreservesContents(t *testing.T) {
	a, err := NewMapped(16)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Sbrk(16)
	require.NoError(t, err)
	buf := a.Bytes()
	buf[0] = 0x42
	buf[15] = 0x7F

	// Force growth well past whatever the initial reservation was.
	_, err = a.Sbrk(1 << 20)
	require.NoError(t, err)

	grown := a.Bytes()
	assert.Equal(t, byte(0x42), grown[0])
	assert.Equal(t, byte(0x7F), grown[15])
	assert.Len(t, grown, 16+(1<<20))
}

func TestMapped_CloseReleasesRegion(t *testing.T) {
	a, err := NewMapped(1 << 12)
	require.NoError(t, err)
	assert.NoError(t, a.Close())
}
