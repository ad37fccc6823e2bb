package runlength

// LongestRun returns the longest stretch of seq during which some distinct
// value of seq was not observed (see package doc). Empty input yields 0; a
// sequence of one repeated value yields its length.
//
// Counters are allocated for every distinct value up front, in order of first
// appearance, so a prefix before a value's first occurrence is counted too.
//
// Complexity: O(n·k) time, O(k) extra space.
func LongestRun[T comparable](seq []T) int {
	if len(seq) == 0 {
		return 0
	}

	// Index each distinct value once; counts[idx[v]] tracks v.
	idx := make(map[T]int)
	for _, v := range seq {
		if _, ok := idx[v]; !ok {
			idx[v] = len(idx)
		}
	}
	if len(idx) == 1 {
		return len(seq)
	}
	counts := make([]int, len(idx))

	var longest, i int
	for _, v := range seq {
		for i = range counts {
			counts[i]++
		}
		// Reset happens before the max update: the observed value's own
		// counter must never count the current element.
		counts[idx[v]] = 0
		for i = range counts {
			if counts[i] > longest {
				longest = counts[i]
			}
		}
	}

	return longest
}
