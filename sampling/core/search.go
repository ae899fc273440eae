package core

// FindInterval locates the table segment containing a query position.
//
// pred must be monotonic over the indices 0..size-1: true up to some
// threshold index and false past it, for example "nodes[i] <= x" over a
// strictly increasing node table. FindInterval returns the largest index
// for which pred holds, clamped to [0, size-2] so that index+1 is always a
// valid access into the table. A predicate that holds nowhere yields 0; one
// that holds everywhere yields size-2.
func FindInterval(size int, pred func(int) bool) int {
	first, length := 0, size
	for length > 0 {
		half := length >> 1
		middle := first + half
		if pred(middle) {
			first = middle + 1
			length -= half + 1
		} else {
			length = half
		}
	}
	return clampInt(first-1, 0, size-2)
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
