package heap

// changeAlloc is the central mutator: it writes newDiv into
// h, writes h's footer when newDiv is free, then propagates the change
// into the two adjacent blocks' neighbor-allocation bits (and their
// footers, when those neighbors are free).
//
// The predecessor is only reachable in O(1) when it is free (it then has a
// footer immediately before h to read its size from); when h.P is true the
// predecessor is allocated and its header cannot be located without a full
// backward scan, so it is left untouched. This also transparently handles
// the prologue: the very first real block always has P=true (the prologue
// is always allocated), so changeAlloc never attempts to dereference the
// prologue as a variable-length predecessor.
func (a *Allocator) changeAlloc(h addr, newDiv divider) {
	a.writeDivider(h, newDiv)
	if !newDiv.allocated() {
		a.writeDivider(a.footerAddr(h), newDiv)
	}

	succAddr := a.nextHeaderAddr(h)
	succ := a.readDivider(succAddr)
	newSucc := succ.withPrevAlloc(newDiv.allocated())
	a.writeDivider(succAddr, newSucc)
	if !newSucc.allocated() && !newSucc.isEpilogue() {
		a.writeDivider(a.footerAddr(succAddr), newSucc)
	}

	if !newDiv.prevAlloc() {
		predAddr := a.prevHeaderAddr(h)
		pred := a.readDivider(predAddr)
		newPred := pred.withNextAlloc(newDiv.allocated())
		a.writeDivider(predAddr, newPred)
		a.writeDivider(a.footerAddr(predAddr), newPred)
	}
}
