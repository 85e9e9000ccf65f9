package heap

// classFor returns the index of the smallest size class whose threshold is
// >= size, or the catch-all class (numSizeClasses-1) when size exceeds
// every threshold. Spec.md §4.3 calls for "a linear scan of five
// comparisons" as an explicit behavioral requirement, not merely a
// performance detail, so this stays a linear scan rather than the
// binary search a larger class table would warrant.
func classFor(size uint64) int {
	for i, t := range sizeClassThresholds {
		if size <= t {
			return i
		}
	}
	return numSizeClasses - 1
}
