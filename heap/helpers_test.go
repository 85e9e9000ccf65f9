package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kendreaditya/malloc/heap/arena"
)

// newTestAllocator returns a fresh allocator over an in-process Slice
// arena, the default backing store for the unit test suite.
func newTestAllocator(t *testing.T) *Allocator {
	t.Helper()
	a, err := New(arena.NewSlice())
	require.NoError(t, err)
	return a
}

// mustAlloc allocates n bytes and fails the test on error or a null
// pointer, returning the Ptr and payload slice.
func mustAlloc(t *testing.T, a *Allocator, n int) (Ptr, []byte) {
	t.Helper()
	p, buf, err := a.Allocate(n)
	require.NoError(t, err)
	require.NotEqual(t, NullPtr, p)
	require.Len(t, buf, n)
	return p, buf
}

// blockSize returns the total divider-reported size of the block backing
// payload pointer p.
func blockSize(a *Allocator, p Ptr) uint64 {
	return a.readDivider(headerOfPayload(addr(p))).size()
}

// freeListLen returns the number of nodes in size class cls.
func freeListLen(a *Allocator, cls int) int {
	n := 0
	for h := a.freeLists[cls]; h != nullAddr; h = a.linkNext(h) {
		n++
	}
	return n
}

// totalFreeBlocks returns the number of nodes across all free lists.
func totalFreeBlocks(a *Allocator) int {
	n := 0
	for cls := range a.freeLists {
		n += freeListLen(a, cls)
	}
	return n
}
