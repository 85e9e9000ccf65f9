package heap

import "encoding/binary"

// Free blocks reuse the first 16 bytes of payload as intrusive list links:
// prevFree at payload+0, nextFree at payload+8. A link value of nullAddr
// marks the end of the list in that direction.

func (a *Allocator) linkPrev(h addr) addr {
	buf := a.buf()
	p := payloadAddr(h)
	return addr(binary.LittleEndian.Uint64(buf[p : p+dividerSz]))
}

func (a *Allocator) setLinkPrev(h, v addr) {
	buf := a.buf()
	p := payloadAddr(h)
	binary.LittleEndian.PutUint64(buf[p:p+dividerSz], uint64(v))
}

func (a *Allocator) linkNext(h addr) addr {
	buf := a.buf()
	p := payloadAddr(h) + dividerSz
	return addr(binary.LittleEndian.Uint64(buf[p : p+dividerSz]))
}

func (a *Allocator) setLinkNext(h, v addr) {
	buf := a.buf()
	p := payloadAddr(h) + dividerSz
	binary.LittleEndian.PutUint64(buf[p:p+dividerSz], uint64(v))
}

// insert adds h to the head of its size class's free list (LIFO).
func (a *Allocator) insert(h addr) {
	cls := classFor(a.readDivider(h).size())
	head := a.freeLists[cls]

	a.setLinkPrev(h, nullAddr)
	a.setLinkNext(h, head)
	if head != nullAddr {
		a.setLinkPrev(head, h)
	}
	a.freeLists[cls] = h
}

// unlink splices h out of its size class's free list.
func (a *Allocator) unlink(h addr) {
	cls := classFor(a.readDivider(h).size())
	prev := a.linkPrev(h)
	next := a.linkNext(h)

	if prev != nullAddr {
		a.setLinkNext(prev, next)
	} else {
		a.freeLists[cls] = next
	}
	if next != nullAddr {
		a.setLinkPrev(next, prev)
	}
}
