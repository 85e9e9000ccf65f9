// Package arena provides the sbrk-style heap-extension primitive the heap
// package treats as an external collaborator: something that extends a
// single contiguous region by n bytes and reports its current bounds.
//
// Two implementations are provided. Slice is a portable, allocation-free
// (from the OS's point of view) growable buffer suitable for tests and any
// GOOS. Mapped is backed by a real anonymous OS memory mapping on Linux and
// Darwin (see mapped_linux.go / mapped_darwin.go) and falls back to the
// Slice strategy elsewhere (mapped_other.go).
package arena

import "errors"

// ErrGrowFailed is returned by Sbrk when the requested extension could not
// be satisfied.
var ErrGrowFailed = errors.New("arena: grow failed")

// Arena is the external sbrk-style collaborator required by heap.Allocator.
type Arena interface {
	// Sbrk extends the managed region by exactly n bytes and returns the
	// offset at which the new bytes begin. The region is contiguous with
	// all prior extensions.
	Sbrk(n uintptr) (base uintptr, err error)

	// Lo returns the offset of the start of the currently reserved region.
	Lo() uintptr

	// Hi returns the offset one past the end of the currently reserved
	// region (i.e. its current length).
	Hi() uintptr

	// Bytes returns the full backing region, Lo()..Hi(). The returned
	// slice is only valid until the next call to Sbrk, which may
	// reallocate the backing storage.
	Bytes() []byte

	// Close releases any resources held by the arena (a no-op for
	// implementations with nothing to release).
	Close() error
}
