package changepoint

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcp/internal/randutil"
)

// Method tag used to prefix errors.
const methodGenerate = "Generate"

// ErrNeedRandSource indicates a nil *rand.Rand was passed to Generate.
var ErrNeedRandSource = errors.New("changepoint: rng is required")

// ErrBadRange indicates a block-length range with lo < 1 or hi < lo.
var ErrBadRange = errors.New("changepoint: invalid block-length range")

// ErrBadBudget indicates a negative trial budget.
var ErrBadBudget = errors.New("changepoint: negative budget")

// Generate draws block lengths uniformly from [lo, hi] and returns the running
// cumulative sums, stopping before the first sum that would exceed budget.
// The result is strictly increasing, every element is in [lo, budget], and
// consecutive differences lie in [lo, hi]. budget < lo yields an empty slice.
func Generate(rng *rand.Rand, budget, lo, hi int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	if lo < 1 || hi < lo {
		return nil, fmt.Errorf("%s: lo=%d hi=%d: %w", methodGenerate, lo, hi, ErrBadRange)
	}
	if budget < 0 {
		return nil, fmt.Errorf("%s: budget=%d: %w", methodGenerate, budget, ErrBadBudget)
	}

	points := make([]int, 0, budget/lo)
	total := 0
	for total < budget {
		length := randutil.IntRange(rng, lo, hi)
		if total+length > budget {
			break
		}
		total += length
		points = append(points, total)
	}

	return points, nil
}

// Lengths returns the block lengths encoded by points (first difference,
// with an implicit leading 0).
func Lengths(points []int) []int {
	out := make([]int, len(points))
	prev := 0
	for i, p := range points {
		out[i] = p - prev
		prev = p
	}
	return out
}
