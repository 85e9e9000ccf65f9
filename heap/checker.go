package heap

// Check walks the heap from the first real block to the epilogue, then
// walks every free list, verifying the heap's structural invariants.
// It is intended for debug builds and tests; it never attempts repair, and
// returns false on the first violation found. line is an arbitrary caller
// identifier (e.g. a source line number) included in log output to make
// it easy to tell which call site detected corruption.
func (a *Allocator) Check(line int) bool {
	buf := a.buf()
	hi := addr(len(buf))

	inFreeList := make(map[addr]bool)
	for cls, head := range a.freeLists {
		for h := head; h != nullAddr; h = a.linkNext(h) {
			if h < dividerSz || h+dividerSz > hi {
				a.logDebug("check: free-list node out of bounds", "line", line, "class", cls, "addr", uint64(h))
				return false
			}
			d := a.readDivider(h)
			if d.allocated() {
				a.logDebug("check: free-list node marked allocated", "line", line, "class", cls, "addr", uint64(h))
				return false
			}
			if classFor(d.size()) != cls {
				a.logDebug("check: free-list node in wrong class", "line", line, "addr", uint64(h))
				return false
			}
			inFreeList[h] = true
		}
	}

	h := addr(dividerSz) // first real block sits right after the 8-byte prologue
	prevWasFree := false
	for {
		if h+dividerSz > hi {
			a.logDebug("check: header out of bounds", "line", line, "addr", uint64(h))
			return false
		}
		d := a.readDivider(h)
		if d.isEpilogue() {
			break
		}
		if d.size() == 0 || d.size()%alignment != 0 {
			a.logDebug("check: bad size", "line", line, "addr", uint64(h), "size", d.size())
			return false
		}
		if !d.allocated() {
			if prevWasFree {
				a.logDebug("check: two adjacent free blocks", "line", line, "addr", uint64(h))
				return false
			}
			footer := a.readDivider(a.footerAddr(h))
			if footer != d {
				a.logDebug("check: header/footer mismatch", "line", line, "addr", uint64(h))
				return false
			}
			if !inFreeList[h] {
				a.logDebug("check: free block missing from its free list", "line", line, "addr", uint64(h))
				return false
			}
		} else if inFreeList[h] {
			a.logDebug("check: allocated block present in a free list", "line", line, "addr", uint64(h))
			return false
		}
		prevWasFree = !d.allocated()
		h = a.nextHeaderAddr(h)
	}
	return true
}
