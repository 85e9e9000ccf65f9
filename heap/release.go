package heap

// free marks h free, then coalesces it with whichever
// of its neighbors are also free (the epilogue is never a coalescing
// candidate).
func (a *Allocator) free(h addr) {
	d := a.readDivider(h)
	predFree := !d.prevAlloc()

	succAddr := a.nextHeaderAddr(h)
	succ := a.readDivider(succAddr)
	succFree := !succ.allocated() && !succ.isEpilogue()

	freed := newDivider(d.size(), false, d.prevAlloc(), succ.allocated(), false)
	a.changeAlloc(h, freed)

	a.logDebug("free", "header", uint64(h), "predFree", predFree, "succFree", succFree)

	switch {
	case predFree && succFree:
		predAddr := a.prevHeaderAddr(h)
		a.unlink(predAddr)
		a.unlink(succAddr)
		merged := a.coalesce(predAddr, a.nextHeaderAddr(succAddr))
		a.insert(merged)
	case predFree:
		predAddr := a.prevHeaderAddr(h)
		a.unlink(predAddr)
		merged := a.coalesce(predAddr, a.nextHeaderAddr(h))
		a.insert(merged)
	case succFree:
		a.unlink(succAddr)
		merged := a.coalesce(h, a.nextHeaderAddr(succAddr))
		a.insert(merged)
	default:
		a.insert(h)
	}
}

// coalesce merges the run of blocks spanning [l, rEnd) into a single free
// block headed at l: size becomes rEnd-l, P is carried
// over from l's own divider, and N is taken from the divider that will sit
// exactly at rEnd (the new successor) once the merge is complete.
func (a *Allocator) coalesce(l, rEnd addr) addr {
	ld := a.readDivider(l)
	succAtEnd := a.readDivider(rEnd)
	merged := newDivider(uint64(rEnd-l), false, ld.prevAlloc(), succAtEnd.allocated(), false)
	a.changeAlloc(l, merged)
	a.logDebug("coalesce", "header", uint64(l), "size", uint64(rEnd-l))
	return l
}
