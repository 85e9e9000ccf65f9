// Package heap implements a single-threaded, explicit-free-list dynamic
// memory allocator over one contiguous, monotonically-growing byte region
// supplied by an arena.Arena.
//
// # Overview
//
// The allocator stores metadata in 8-byte "divider" words — boundary tags
// packing a block's size together with its own allocated bit, two
// neighbor-allocation bits and an epilogue marker — placed at the start (header) and, for free blocks, the
// end (footer) of every block. A prologue divider and an epilogue divider
// bracket the managed region so every real block has valid neighbors without
// special-casing the heap ends during coalescing.
//
// Free blocks are indexed by six segregated, intrusive, doubly linked lists
// keyed by size class. Placement is best-fit within a relative margin with
// early exit: the allocator does not exhaustively search a class for the
// true minimum, trading a small amount of extra fragmentation for bounded
// search time on large classes.
//
// # Allocator Interface
//
//   - Allocate(n): reserve n bytes, returns a Ptr and the payload slice
//   - Free(p): release a previously allocated block
//   - Reallocate(p, n): keep the block when its payload already holds n
//     bytes (it is never shrunk), else move to a new block
//   - ZeroAllocate(m, n): allocate m*n zeroed bytes
//   - Check(line): walk the heap and free lists, verifying structural
//     invariants (debug builds / tests only)
//
// # Usage Example
//
//	a, err := heap.New(arena.NewSlice())
//	if err != nil {
//	    return err
//	}
//
//	p, buf, err := a.Allocate(100)
//	if err != nil {
//	    return err
//	}
//	copy(buf, []byte("hello"))
//
//	if !a.Check(0) {
//	    log.Fatal("heap corrupted")
//	}
//	a.Free(p)
//
// # Size Classes
//
// The allocator maintains six segregated free-lists, keyed by the ascending
// thresholds {32, 48, 64, 96, 2916}, with class 5 as the catch-all for
// anything larger:
//
//	Class 0:     32 bytes
//	Class 1:     48 bytes
//	Class 2:     64 bytes
//	Class 3:     96 bytes
//	Class 4:   2916 bytes
//	Class 5:   2917+ bytes (large allocations)
//
// # Heap Growth
//
// When placement fails in every scanned class, the allocator extends the
// managed region by exactly the aligned allocation size via the supplied
// arena.Arena and re-anchors the epilogue divider at the new end.
//
// # Block References
//
// Ptr values are byte offsets into the arena's backing buffer, relative to
// the start of the managed region (offset 0 is the prologue header and is
// never a valid payload address, so Ptr(0) doubles as "no pointer").
//
// # Alignment Requirements
//
// Every block size is a multiple of 16 and the first block header sits at
// offset 8, right after the prologue, so block headers lie at offsets 8 mod
// 16 and the payload addresses returned by Allocate/Reallocate/ZeroAllocate
// are 16-byte aligned.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. There is no internal locking: the
// caller must serialize access.
//
// # Related Packages
//
//   - github.com/kendreaditya/malloc/heap/arena: the pluggable sbrk-style
//     backing store (in-process growable buffer, or an OS-mapped region)
//   - github.com/kendreaditya/malloc/internal/obslog: optional structured
//     debug logging of grow/split/coalesce/alloc/free events
package heap
