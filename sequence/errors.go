// SPDX-License-Identifier: MIT
// Package: fcp/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX); errors from changepoint, block,
//     outcome and probe are wrapped with %w and stay matchable too.
//   • Generate never panics; validation panics are confined to WithX option
//     constructors receiving nil.

package sequence

import "errors"

// ErrNeedRandSource indicates no RNG was configured (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("sequence: rng is required")

// ErrBadBlockSize indicates a block size below 1 for block-index computation.
var ErrBadBlockSize = errors.New("sequence: block size must be positive")

// ErrIncompleteTable indicates fewer probability pairs or palettes than
// trial types.
var ErrIncompleteTable = errors.New("sequence: table does not cover every trial type")
