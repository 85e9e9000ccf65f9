package heap

// Stats summarizes the current shape of a heap: its total span and the
// population of each segregated free list, for debug and reporting tools
// that want a cheap snapshot without walking every block.
type Stats struct {
	// HeapLo and HeapHi bound the arena's currently reserved region.
	HeapLo, HeapHi uint64

	// FreeListCounts[i] is the number of free blocks currently linked
	// into size class i.
	FreeListCounts [numSizeClasses]int
}

// Stats walks every free list (but not the block-by-block heap) and
// reports their population alongside the arena's current span.
func (a *Allocator) Stats() Stats {
	var s Stats
	s.HeapLo = uint64(a.arena.Lo())
	s.HeapHi = uint64(a.arena.Hi())
	for cls, head := range a.freeLists {
		n := 0
		for h := head; h != nullAddr; h = a.linkNext(h) {
			n++
		}
		s.FreeListCounts[cls] = n
	}
	return s
}
