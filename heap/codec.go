package heap

import "encoding/binary"

// divider is the 8-byte boundary-tag word: the low 4 bits carry the A/P/N/E
// status flags and the remaining 60 bits carry the block size. Because
// every block size is a multiple of alignment (16), its low 4 bits are
// always zero, so size and flags can share one 64-bit word without any
// bit it would otherwise have to shift around — the layout size|A|P|N|E
// falls directly out of treating the word as size OR'd with the flags.
type divider uint64

const (
	flagA uint64 = 1 << 3
	flagP uint64 = 1 << 2
	flagN uint64 = 1 << 1
	flagE uint64 = 1 << 0

	flagMask = flagA | flagP | flagN | flagE
)

// newDivider packs a size and the four status bits into a divider.
func newDivider(size uint64, a, p, n, e bool) divider {
	v := size &^ flagMask
	if a {
		v |= flagA
	}
	if p {
		v |= flagP
	}
	if n {
		v |= flagN
	}
	if e {
		v |= flagE
	}
	return divider(v)
}

func (d divider) size() uint64     { return uint64(d) &^ flagMask }
func (d divider) allocated() bool  { return uint64(d)&flagA != 0 }
func (d divider) prevAlloc() bool  { return uint64(d)&flagP != 0 }
func (d divider) nextAlloc() bool  { return uint64(d)&flagN != 0 }
func (d divider) isEpilogue() bool { return uint64(d)&flagE != 0 }

// withPrevAlloc returns a copy of d with its P bit set to p, used when
// propagating an allocation-status change into a neighbor's divider.
func (d divider) withPrevAlloc(p bool) divider {
	return newDivider(d.size(), d.allocated(), p, d.nextAlloc(), d.isEpilogue())
}

// withNextAlloc returns a copy of d with its N bit set to n.
func (d divider) withNextAlloc(n bool) divider {
	return newDivider(d.size(), d.allocated(), d.prevAlloc(), n, d.isEpilogue())
}

// readDivider reads the divider word at addr.
func (a *Allocator) readDivider(h addr) divider {
	buf := a.buf()
	return divider(binary.LittleEndian.Uint64(buf[h : h+dividerSz]))
}

// writeDivider writes d at addr.
func (a *Allocator) writeDivider(h addr, d divider) {
	buf := a.buf()
	binary.LittleEndian.PutUint64(buf[h:h+dividerSz], uint64(d))
}

// footerAddr returns the address of h's footer word. Only meaningful when
// h is a free block (allocated blocks have no footer).
func (a *Allocator) footerAddr(h addr) addr {
	return h + addr(a.readDivider(h).size()) - dividerSz
}

// payloadAddr returns the payload address of header h.
func payloadAddr(h addr) addr { return h + dividerSz }

// headerOfPayload returns the header address for a payload address.
func headerOfPayload(p addr) addr { return p - dividerSz }

// nextHeaderAddr returns the address of the block immediately following h.
func (a *Allocator) nextHeaderAddr(h addr) addr {
	return h + addr(a.readDivider(h).size())
}

// prevFooterAddr returns the address of the footer word immediately
// preceding h. Always in-bounds because the prologue guarantees a divider
// sits at offset 0.
func prevFooterAddr(h addr) addr { return h - dividerSz }

// prevHeaderAddr returns the header address of the block preceding h. Only
// valid when h's P bit is false (the predecessor is free and therefore has
// a footer to read its size from).
func (a *Allocator) prevHeaderAddr(h addr) addr {
	size := a.readDivider(prevFooterAddr(h)).size()
	return h - addr(size)
}
