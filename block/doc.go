// Package block builds factorial trial blocks under a run-length constraint.
//
// A block is the full cross product of context sub-levels and bonus offers,
// each combination appearing exactly once, in random order:
//
//	contexts {0,1,2} × offers {0..6}  → 21 cells
//
// The context sub-level is a nominal balancing factor. After shuffling, the
// context sequence is scored with runlength.LongestRun; a score at or above
// the limit discards the order and a fresh shuffle is drawn. Once a block is
// accepted its cells are relabeled with the block's context-pair index, so the
// sub-level only ever influences ordering.
//
// Termination: each attempt is an independent uniform shuffle with a positive
// acceptance probability (about 3.6% for the defaults), so the retry loop ends
// with probability 1 and after ~28 attempts on average. There is no cap.
//
// Determinism: all shuffles consume the caller's *rand.Rand in order.
package block
