package heap

// init reserves the 16 bytes for the prologue and epilogue dividers and
// clears all free-list heads. It is the only place a fresh heap is
// bootstrapped; every later growth is handled by increaseHeap.
func (a *Allocator) init() error {
	base, err := a.arena.Sbrk(2 * dividerSz)
	if err != nil {
		return ErrOutOfMemory
	}
	prologue := addr(base)
	epilogue := prologue + dividerSz

	a.writeDivider(prologue, newDivider(dividerSz, true, true, true, false))
	a.writeDivider(epilogue, newDivider(0, true, true, true, true))

	for i := range a.freeLists {
		a.freeLists[i] = nullAddr
	}
	return nil
}
