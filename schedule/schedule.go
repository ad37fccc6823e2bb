// Package schedule interleaves easy and hard trial types into a session plan.
//
// Each trial type owns a pool of occurrences (one per change point of its
// stream). Slots are filled alternately: even slots prefer easy, odd slots
// prefer hard, and an exhausted preference falls back to the other pool.
// When both pools are empty the plan ends, possibly well before the
// requested number of slots. That shortfall is reported, never hidden.
package schedule

import (
	"errors"
	"fmt"
)

// TrialType selects which fixed reward-probability pair a block uses.
type TrialType int

const (
	// Easy blocks use context pair 0 (the widely separated probabilities).
	Easy TrialType = iota
	// Hard blocks use context pair 1.
	Hard
)

// ErrUnknownTrialType is returned when text does not name a TrialType.
var ErrUnknownTrialType = errors.New("schedule: unknown trial type")

// ErrNegativeCount indicates a negative pool size or slot budget.
var ErrNegativeCount = errors.New("schedule: negative count")

// ContextPair maps the trial type 1:1 onto its context-pair index.
func (t TrialType) ContextPair() int {
	return int(t)
}

// String returns "easy" or "hard".
func (t TrialType) String() string {
	switch t {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("TrialType(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TrialType) MarshalText() ([]byte, error) {
	if t != Easy && t != Hard {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(t), ErrUnknownTrialType)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TrialType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "easy":
		*t = Easy
	case "hard":
		*t = Hard
	default:
		return fmt.Errorf("UnmarshalText: %q: %w", text, ErrUnknownTrialType)
	}
	return nil
}

// Plan is the ordered list of scheduled trial types plus the number of slots
// that were asked for.
type Plan struct {
	Types     []TrialType `json:"types" yaml:"types"`
	Requested int         `json:"requested" yaml:"requested"`
}

// Scheduled is the number of slots actually filled.
func (p Plan) Scheduled() int {
	return len(p.Types)
}

// Shortfall is the number of requested slots left unfilled. Slots are
// trial-type occurrences, not trials.
func (p Plan) Shortfall() int {
	return p.Requested - len(p.Types)
}

// Count returns how many slots were given to tt.
func (p Plan) Count(tt TrialType) int {
	n := 0
	for _, v := range p.Types {
		if v == tt {
			n++
		}
	}
	return n
}

// Interleave fills up to budget slots from pools of easy and hard occurrences.
// Neither type is ever scheduled more often than its pool allows.
//
// Complexity: O(min(budget, easy+hard)).
func Interleave(easy, hard, budget int) (Plan, error) {
	if easy < 0 || hard < 0 || budget < 0 {
		return Plan{}, fmt.Errorf("Interleave: easy=%d hard=%d budget=%d: %w",
			easy, hard, budget, ErrNegativeCount)
	}

	plan := Plan{Requested: budget}
	n := min(budget, easy+hard)
	plan.Types = make([]TrialType, 0, n)

	var usedEasy, usedHard int
	for slot := 0; slot < budget; slot++ {
		preferEasy := slot%2 == 0
		switch {
		case preferEasy && usedEasy < easy:
			plan.Types = append(plan.Types, Easy)
			usedEasy++
		case !preferEasy && usedHard < hard:
			plan.Types = append(plan.Types, Hard)
			usedHard++
		case usedEasy < easy:
			plan.Types = append(plan.Types, Easy)
			usedEasy++
		case usedHard < hard:
			plan.Types = append(plan.Types, Hard)
			usedHard++
		default:
			// Both pools exhausted.
			return plan, nil
		}
	}

	return plan, nil
}
