//go:build linux

package arena

import (
	"golang.org/x/sys/unix"
)

const defaultMappedCapacity = 1 << 16 // 64KiB initial reservation

// Mapped is an Arena backed by an anonymous, private mmap'd region. Growth
// is performed with mremap(2), which lets the kernel extend the mapping in
// place when possible and relocates it (copying the contents) otherwise.
//
// Mapped gives the heap package a genuinely OS-enforced contiguous virtual
// memory region instead of a Go-managed slice, at the cost of only running
// on platforms with mremap (Linux).
type Mapped struct {
	region []byte
	used   uintptr
}

// NewMapped reserves an initial mapping of at least initialCapacity bytes
// (rounded up to defaultMappedCapacity if smaller or zero) and returns an
// Arena with zero bytes of heap committed.
func NewMapped(initialCapacity int) (Arena, error) {
	cap := uintptr(initialCapacity)
	if cap < defaultMappedCapacity {
		cap = defaultMappedCapacity
	}
	region, err := unix.Mmap(-1, 0, int(cap), unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, ErrGrowFailed
	}
	return &Mapped{region: region}, nil
}

func (m *Mapped) Sbrk(n uintptr) (uintptr, error) {
	base := m.used
	need := m.used + n
	if need > uintptr(len(m.region)) {
		newCap := uintptr(len(m.region)) * 2
		if newCap < need {
			newCap = need
		}
		grown, err := unix.Mremap(m.region, int(newCap), unix.MREMAP_MAYMOVE)
		if err != nil {
			return 0, ErrGrowFailed
		}
		m.region = grown
	}
	m.used = need
	return base, nil
}

func (m *Mapped) Lo() uintptr { return 0 }

func (m *Mapped) Hi() uintptr { return m.used }

func (m *Mapped) Bytes() []byte { return m.region[:m.used] }

func (m *Mapped) Close() error {
	if m.region == nil {
		return nil
	}
	err := unix.Munmap(m.region)
	m.region = nil
	return err
}
