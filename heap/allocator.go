package heap

import (
	"log/slog"
	"math/bits"

	"github.com/kendreaditya/malloc/heap/arena"
)

// Allocator is the single-threaded, in-place boundary-tag heap engine. It
// owns one arena.Arena and the six segregated free-list heads over it.
type Allocator struct {
	arena arena.Arena
	log   *slog.Logger // nil is valid: no logging

	// freeLists[i] is the address of the head of size class i, or
	// nullAddr when the class is empty.
	freeLists [numSizeClasses]addr
}

// Option configures an Allocator at construction time.
type Option func(*Allocator)

// WithLogger attaches a structured logger that receives debug-level events
// for grow/split/coalesce/alloc/free. A nil logger (the default) disables
// all of this bookkeeping on the hot path.
func WithLogger(l *slog.Logger) Option {
	return func(a *Allocator) { a.log = l }
}

// New creates an allocator over a, installing the prologue and epilogue
// sentinels. It fails only if the initial sentinel reservation via a.Sbrk
// fails.
func New(a arena.Arena, opts ...Option) (*Allocator, error) {
	al := &Allocator{arena: a}
	for _, opt := range opts {
		opt(al)
	}
	if err := al.init(); err != nil {
		return nil, err
	}
	return al, nil
}

func (a *Allocator) buf() []byte { return a.arena.Bytes() }

func (a *Allocator) logDebug(msg string, args ...any) {
	if a.log != nil {
		a.log.Debug(msg, args...)
	}
}

// Allocate reserves at least n bytes and returns a Ptr identifying the
// block together with a slice over its n-byte payload. Allocate(0) returns
// (NullPtr, nil, nil).
func (a *Allocator) Allocate(n int) (Ptr, []byte, error) {
	if n <= 0 {
		return NullPtr, nil, nil
	}
	s := align16(uint64(n) + dividerSz)
	if s < minBlock {
		s = minBlock
	}

	h, ok := a.findFreeSpace(s)
	if ok {
		a.unlink(h)
		d := a.readDivider(h)
		if d.size() > s+dividerSz+2*dividerSz { // s + header(8) + min free payload(16)
			a.split(h, s)
		} else {
			a.changeAlloc(h, newDivider(d.size(), true, d.prevAlloc(), d.nextAlloc(), false))
		}
	} else {
		grown, err := a.increaseHeap(s)
		if err != nil {
			return NullPtr, nil, ErrOutOfMemory
		}
		h = grown
	}

	a.logDebug("allocate", "size", s, "header", uint64(h))
	p := payloadAddr(h)
	buf := a.buf()
	return Ptr(p), buf[p : p+addr(n)], nil
}

// Free releases the block at p. Free(NullPtr) is a silent no-op. Freeing an
// invalid or already-free pointer is undefined behavior:
// the allocator performs no validation of caller-supplied pointers.
func (a *Allocator) Free(p Ptr) error {
	if p == NullPtr {
		return nil
	}
	a.free(headerOfPayload(addr(p)))
	return nil
}

// Reallocate resizes the block at p to n bytes, preserving the first
// min(oldSize, n) bytes of payload. Reallocate(NullPtr, n) behaves like
// Allocate(n); Reallocate(p, 0) behaves like Free(p) and returns NullPtr.
func (a *Allocator) Reallocate(p Ptr, n int) (Ptr, []byte, error) {
	if p == NullPtr {
		return a.Allocate(n)
	}
	if n <= 0 {
		_ = a.Free(p)
		return NullPtr, nil, nil
	}

	h := headerOfPayload(addr(p))
	d := a.readDivider(h)
	oldPayload := d.size() - dividerSz

	if oldPayload >= uint64(n) {
		buf := a.buf()
		return p, buf[addr(p) : addr(p)+addr(n)], nil
	}

	newP, _, err := a.Allocate(n)
	if err != nil {
		return NullPtr, nil, err
	}
	buf := a.buf()
	copyLen := oldPayload
	if uint64(n) < copyLen {
		copyLen = uint64(n)
	}
	copy(buf[addr(newP):addr(newP)+addr(copyLen)], buf[addr(p):addr(p)+addr(copyLen)])
	_ = a.Free(p)

	buf = a.buf()
	return newP, buf[addr(newP) : addr(newP)+addr(n)], nil
}

// ZeroAllocate allocates m*n bytes and zero-fills the payload. It rejects
// requests whose product does not fit in an int with ErrInvalidSize rather
// than silently truncating.
func (a *Allocator) ZeroAllocate(m, n int) (Ptr, []byte, error) {
	if m <= 0 || n <= 0 {
		return NullPtr, nil, nil
	}
	hi, lo := bits.Mul64(uint64(m), uint64(n))
	if hi != 0 || lo > uint64(int(^uint(0)>>1)) {
		return NullPtr, nil, ErrInvalidSize
	}
	p, buf, err := a.Allocate(int(lo))
	if err != nil {
		return NullPtr, nil, err
	}
	for i := range buf {
		buf[i] = 0
	}
	return p, buf, nil
}
