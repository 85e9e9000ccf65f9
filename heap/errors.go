package heap

import "errors"

var (
	// ErrOutOfMemory indicates that no free block large enough was found and
	// extending the heap via the arena failed.
	ErrOutOfMemory = errors.New("heap: out of memory")

	// ErrInvalidSize indicates a requested size that cannot be serviced
	// regardless of available memory: a ZeroAllocate whose m*n product
	// does not fit in an int. (Zero or negative sizes are not errors; they
	// return NullPtr.)
	ErrInvalidSize = errors.New("heap: invalid allocation size")

	// ErrCorruptHeap indicates the debug checker found a broken invariant.
	ErrCorruptHeap = errors.New("heap: invariant violation")

	// ErrArenaClosed indicates an operation was attempted after the
	// backing arena was closed.
	ErrArenaClosed = errors.New("heap: arena closed")
)
