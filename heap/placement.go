package heap

// findFreeSpace scans class_for(s) first, then falls through each larger
// class in turn, up to the large-block catch-all class, until a scan finds
// a candidate.
func (a *Allocator) findFreeSpace(s uint64) (addr, bool) {
	for cls := classFor(s); cls < numSizeClasses; cls++ {
		if h, ok := a.scanClass(cls, s); ok {
			return h, true
		}
	}
	return nullAddr, false
}

// scanClass walks free list cls, tracking the smallest block seen that
// satisfies size >= s, and returns as soon as a candidate falls within the
// best-fit margin (size <= s * 1.225) of the request.
func (a *Allocator) scanClass(cls int, s uint64) (addr, bool) {
	var best addr = nullAddr
	var bestSize uint64

	margin := s * marginNum / marginDen

	for h := a.freeLists[cls]; h != nullAddr; h = a.linkNext(h) {
		sz := a.readDivider(h).size()
		if sz < s {
			continue
		}
		if best == nullAddr || sz < bestSize {
			best, bestSize = h, sz
		}
		if sz <= margin {
			return best, true
		}
	}
	if best != nullAddr {
		return best, true
	}
	return nullAddr, false
}

// split carves an allocated prefix of size s out of free block h, leaving
// a free suffix of size h.size-s. h must already have
// been unlinked from its free list by the caller.
func (a *Allocator) split(h addr, s uint64) {
	old := a.readDivider(h)
	suffixAddr := h + addr(s)
	suffixSize := old.size() - s

	prefix := newDivider(s, true, old.prevAlloc(), false, false)
	a.writeDivider(h, prefix)

	suffix := newDivider(suffixSize, false, true, old.nextAlloc(), false)
	a.writeDivider(suffixAddr, suffix)
	a.writeDivider(a.footerAddr(suffixAddr), suffix)

	// Belt-and-braces re-propagation on both halves, preserved from the
	// source design: the header/footer writes above already
	// establish the correct bits, but change_alloc is re-invoked anyway.
	a.changeAlloc(h, prefix)
	a.changeAlloc(suffixAddr, suffix)

	a.insert(suffixAddr)
	a.logDebug("split", "header", uint64(h), "prefix", s, "suffix", suffixSize)
}
