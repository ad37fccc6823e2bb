// Package runlength measures how long a categorical sequence goes without
// alternating, the balancing statistic used to reject badly shuffled blocks.
//
// What is measured?
//
//	LongestRun keeps one counter per distinct value. At every element all
//	counters advance by one and the counter of the observed value drops to 0,
//	so a counter holds "elements since this value was last seen". The result
//	is the largest value any counter ever held.
//
//	For a sequence over two values this is exactly the longest run of
//	identical consecutive values:
//
//	  [0 0 0 0 1]   → 4
//	  [0 1 0 1 0 1] → 1
//
//	With more values it is the longest stretch in which some value is
//	absent, which is never shorter than the longest identical run. A bound
//	on it therefore also bounds identical runs.
//
//	A sequence holding a single distinct value is one identical run and
//	reports its full length:
//
//	  [0 0 0 0 0]   → 5
//
// Usage:
//
//	if runlength.LongestRun(contexts) >= 5 {
//	    // reshuffle
//	}
//
// Complexity: O(n·k) time for n elements over k distinct values, O(k) memory.
package runlength
