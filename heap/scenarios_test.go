package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tests in this file reproduce the six literal end-to-end scenarios of
// a set of representative end-to-end scenarios, on a fresh allocator, 64-bit host, 16-byte
// alignment.

func TestScenario1_SmallAlloc(t *testing.T) {
	a := newTestAllocator(t)

	p1, buf := mustAlloc(t, a, 1)
	assert.Equal(t, uint64(0), uint64(p1)%alignment, "payload must be 16-byte aligned")
	assert.Equal(t, uint64(32), blockSize(a, p1))
	require.Len(t, buf, 1)

	require.NoError(t, a.Free(p1))
	assert.Equal(t, 1, totalFreeBlocks(a))
	assert.Equal(t, 1, freeListLen(a, 0))
}

func TestScenario2_Split(t *testing.T) {
	a := newTestAllocator(t)

	big, _ := mustAlloc(t, a, 2000)
	require.Equal(t, uint64(2016), blockSize(a, big))
	require.NoError(t, a.Free(big))

	small, _ := mustAlloc(t, a, 16)
	assert.Equal(t, uint64(32), blockSize(a, small))

	require.Equal(t, 1, totalFreeBlocks(a))
	assert.Equal(t, 1, freeListLen(a, 4))
}

func TestScenario3_CoalesceBothNeighbors(t *testing.T) {
	a := newTestAllocator(t)

	pa, _ := mustAlloc(t, a, 64)
	pb, _ := mustAlloc(t, a, 64)
	pc, _ := mustAlloc(t, a, 64)

	require.NoError(t, a.Free(pa))
	require.NoError(t, a.Free(pc))
	require.NoError(t, a.Free(pb))

	assert.Equal(t, 1, totalFreeBlocks(a))
	merged := headerOfPayload(addr(pa))
	assert.Equal(t, uint64(240), a.readDivider(merged).size())
}

func TestScenario4_ReallocGrowNoMove(t *testing.T) {
	a := newTestAllocator(t)

	p, _ := mustAlloc(t, a, 100)
	require.Equal(t, uint64(112), blockSize(a, p))

	q, buf, err := a.Reallocate(p, 100)
	require.NoError(t, err)
	assert.Equal(t, p, q)
	assert.Len(t, buf, 100)
}

func TestScenario5_ReallocGrowMoves(t *testing.T) {
	a := newTestAllocator(t)

	p, buf := mustAlloc(t, a, 16)
	require.Equal(t, uint64(32), blockSize(a, p))
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	q, newBuf, err := a.Reallocate(p, 1000)
	require.NoError(t, err)
	assert.NotEqual(t, p, q)
	require.Len(t, newBuf, 1000)
	assert.Equal(t, buf[:16], newBuf[:16])
}

func TestScenario6_ZeroInit(t *testing.T) {
	a := newTestAllocator(t)

	p, buf, err := a.ZeroAllocate(4, 8)
	require.NoError(t, err)
	require.Len(t, buf, 32)
	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
	assert.Equal(t, uint64(48), blockSize(a, p))
	assert.Equal(t, 1, classFor(blockSize(a, p)))
	assert.Equal(t, 0, totalFreeBlocks(a))
}
