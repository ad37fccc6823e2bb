// Package changepoint draws randomized block boundaries for a fixed trial budget.
//
// A change point is a cumulative trial count marking the end of a block whose
// length was drawn uniformly from an integer range. Generation stops as soon as
// the next draw would overshoot the budget; that draw is discarded, so the last
// boundary may fall short of the budget.
//
// Example (budget=180, lengths in [28,35]):
//
//	[31 63 92 126 154]   // next draw 29 → 183 > 180, discarded
//
// The number of boundaries always lies in [budget/hi, budget/lo] (integer
// division), i.e. 5 or 6 for the defaults.
//
// Determinism: one Intn draw per accepted boundary plus one for the discarded
// draw; identical seeds yield identical boundaries.
//
// Complexity: O(budget/lo) time and space.
package changepoint
