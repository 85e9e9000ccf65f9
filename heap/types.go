package heap

// Ptr is an offset into the arena's backing buffer, relative to the start
// of the managed region. It identifies a block's payload the way a raw
// pointer would in a C allocator. Ptr(0) is never a valid payload address
// (offset 0 always holds the prologue header), so it doubles as "no
// pointer" the way a nil pointer would.
type Ptr uint64

// NullPtr is returned by Allocate/ZeroAllocate on a zero-size request and
// accepted by Free/Reallocate as a silent no-op / degrade-to-allocate.
const NullPtr Ptr = 0

// addr is an internal block-header offset, the same address space as Ptr
// but denoting a divider location rather than a payload.
type addr uint64

const nullAddr addr = 0

// Tuning constants fixed by design; not configurable at
// runtime.
const (
	alignment = 16 // every block size and payload address is a multiple of this
	dividerSz = 8  // size of one boundary-tag word
	minBlock  = 32 // header(8) + two free-list pointers(16) + footer(8)

	// marginNum/marginDen express the request size plus the 22.5% best-fit
	// search margin as an exact rational (1225/1000, i.e. 1.225) so the
	// placement engine never has to compare floating point values.
	marginNum = 1225
	marginDen = 1000
)

// sizeClassThresholds are the ascending upper bounds of size classes 0..4;
// anything larger falls into the catch-all class (numSizeClasses-1).
var sizeClassThresholds = [5]uint64{32, 48, 64, 96, 2916}

const numSizeClasses = len(sizeClassThresholds) + 1

// align16 rounds n up to the next multiple of alignment.
func align16(n uint64) uint64 {
	return (n + alignment - 1) &^ (alignment - 1)
}
