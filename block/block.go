package block

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcp/internal/randutil"
	"github.com/katalvlaran/fcp/runlength"
)

// Method tags used to prefix errors.
const (
	methodBuild    = "Build"
	methodValidate = "Spec.Validate"
)

// ErrNeedRandSource indicates Build was called with a nil *rand.Rand.
var ErrNeedRandSource = errors.New("block: rng is required")

// ErrBadLevels indicates an empty or duplicated factor level set.
var ErrBadLevels = errors.New("block: invalid factor levels")

// ErrBadRunLimit indicates a run limit no ordering can satisfy.
var ErrBadRunLimit = errors.New("block: run limit too small")

// Cell is one combination of the two block factors.
type Cell struct {
	Context    int `json:"context" yaml:"context"`
	BonusOffer int `json:"bonus_offer" yaml:"bonus_offer"`
}

// Spec describes the factors of a block and the balancing limit.
type Spec struct {
	// Contexts are the nominal context sub-levels (default {0,1,2}).
	Contexts []int
	// Offers are the bonus-offer levels (default {0..6}).
	Offers []int
	// MaxRun rejects a shuffle whose LongestRun over contexts reaches it.
	MaxRun int
	// OnReject, if set, is called for every rejected shuffle with its
	// 1-based attempt number and LongestRun score.
	OnReject func(attempt, longest int)
}

// Validate checks that the spec can produce an accepted block.
func (s Spec) Validate() error {
	if err := distinct(s.Contexts); err != nil {
		return fmt.Errorf("%s: contexts: %w", methodValidate, err)
	}
	if err := distinct(s.Offers); err != nil {
		return fmt.Errorf("%s: offers: %w", methodValidate, err)
	}
	// The level seen last for the first time has waited at least k-1
	// elements, so no order of k levels scores below k-1.
	if s.MaxRun < len(s.Contexts) {
		return fmt.Errorf("%s: max run %d < %d context levels: %w",
			methodValidate, s.MaxRun, len(s.Contexts), ErrBadRunLimit)
	}
	// A lone level repeats for the whole block whatever the order.
	if len(s.Contexts) == 1 && len(s.Offers) >= s.MaxRun {
		return fmt.Errorf("%s: max run %d <= %d cells of a single context level: %w",
			methodValidate, s.MaxRun, len(s.Offers), ErrBadRunLimit)
	}
	return nil
}

func distinct(levels []int) error {
	if len(levels) == 0 {
		return ErrBadLevels
	}
	seen := make(map[int]struct{}, len(levels))
	for _, v := range levels {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate level %d: %w", v, ErrBadLevels)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Levels returns the integers lo..hi inclusive (empty when hi < lo).
func Levels(lo, hi int) []int {
	if hi < lo {
		return []int{}
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}

// Factorial returns the cross product of contexts and offers in row-major
// order (context outer, offer inner).
//
// Complexity: O(|contexts|·|offers|).
func Factorial(contexts, offers []int) []Cell {
	cells := make([]Cell, 0, len(contexts)*len(offers))
	for _, c := range contexts {
		for _, o := range offers {
			cells = append(cells, Cell{Context: c, BonusOffer: o})
		}
	}
	return cells
}

// Shuffle returns a freshly ordered copy of the full cross.
func Shuffle(rng *rand.Rand, contexts, offers []int) []Cell {
	cells := Factorial(contexts, offers)
	randutil.Shuffle(cells, rng)
	return cells
}

// Contexts projects the context sub-levels of cells.
func Contexts(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.Context
	}
	return out
}

// Relabel overwrites every cell's context with pair, in place.
func Relabel(cells []Cell, pair int) {
	for i := range cells {
		cells[i].Context = pair
	}
}

// Result is an accepted block before relabeling plus the number of shuffles
// it took.
type Result struct {
	Cells    []Cell
	Attempts int
}

// Build shuffles the cross of spec until runlength.LongestRun of its contexts
// is below spec.MaxRun. The returned cells still carry their sub-levels;
// call Relabel to stamp the context pair.
func Build(rng *rand.Rand, spec Spec) (Result, error) {
	if rng == nil {
		return Result{}, fmt.Errorf("%s: %w", methodBuild, ErrNeedRandSource)
	}
	if err := spec.Validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodBuild, err)
	}

	var (
		cells    []Cell
		attempts int
		longest  int
	)
	for {
		attempts++
		cells = Shuffle(rng, spec.Contexts, spec.Offers)
		if longest = runlength.LongestRun(Contexts(cells)); longest < spec.MaxRun {
			return Result{Cells: cells, Attempts: attempts}, nil
		}
		if spec.OnReject != nil {
			spec.OnReject(attempts, longest)
		}
	}
}
