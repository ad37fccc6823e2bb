package outcome

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcp/internal/randutil"
)

// Method tags used to prefix errors.
const (
	methodAssign        = "Assign"
	methodColors        = "NewColorAssignment"
	methodTableValidate = "ProbabilityTable.Validate"
)

// Correct-side codes. Left carries the higher probability when forward.
const (
	SideRight = 0
	SideLeft  = 1
)

// Probability bounds, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// ErrNeedRandSource indicates a nil *rand.Rand.
var ErrNeedRandSource = errors.New("outcome: rng is required")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("outcome: probability out of range")

// ErrUnorderedPair indicates a pair whose first probability is lower than its second.
var ErrUnorderedPair = errors.New("outcome: probability pair not ordered high-first")

// ErrUnknownContext indicates a context pair index without table or color entry.
var ErrUnknownContext = errors.New("outcome: unknown context pair")

// ErrBadPalettes indicates an empty palette list.
var ErrBadPalettes = errors.New("outcome: no color palettes")

// ProbabilityTable holds one reward-probability pair per context pair.
type ProbabilityTable [][2]float64

// DefaultTable returns the 0.90/0.10 (easy) and 0.70/0.30 (hard) pairs.
func DefaultTable() ProbabilityTable {
	return ProbabilityTable{
		{0.90, 0.10},
		{0.70, 0.30},
	}
}

// Validate checks ranges and the high-first ordering every pair relies on.
func (t ProbabilityTable) Validate() error {
	for i, pair := range t {
		for _, p := range pair {
			if !(p >= MinProbability && p <= MaxProbability) { // also rejects NaN
				return fmt.Errorf("%s: pair %d: p=%g: %w", methodTableValidate, i, p, ErrInvalidProbability)
			}
		}
		if pair[0] < pair[1] {
			return fmt.Errorf("%s: pair %d: %g < %g: %w", methodTableValidate, i, pair[0], pair[1], ErrUnorderedPair)
		}
	}
	return nil
}

// Rewards are the two payoff values an arm can produce.
type Rewards struct {
	High int `json:"high" yaml:"high"`
	Low  int `json:"low" yaml:"low"`
}

// DefaultRewards returns 10 / 0.
func DefaultRewards() Rewards {
	return Rewards{High: 10, Low: 0}
}

// Palette is an unordered pair of colors for one context pair.
type Palette [2]string

// DefaultPalettes returns red/purple and green/pink.
func DefaultPalettes() []Palette {
	return []Palette{
		{"#D8271C", "#741CD8"}, // red, purple
		{"#1CD855", "#FA92F8"}, // green, pink
	}
}

// ColorAssignment maps each context pair to its session-fixed color order.
type ColorAssignment []Palette

// NewColorAssignment randomizes palettes once for a session: first each
// pair's internal order, then which context gets which pair. The input slice
// is not modified.
func NewColorAssignment(rng *rand.Rand, palettes []Palette) (ColorAssignment, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodColors, ErrNeedRandSource)
	}
	if len(palettes) == 0 {
		return nil, fmt.Errorf("%s: %w", methodColors, ErrBadPalettes)
	}

	out := make(ColorAssignment, len(palettes))
	copy(out, palettes)
	for i := range out {
		pair := out[i][:]
		randutil.Shuffle(pair, rng)
	}
	randutil.Shuffle(out, rng)

	return out, nil
}

// Options is the per-trial layout of the two arms, left first.
type Options struct {
	CorrectSide int        `json:"correct_side" yaml:"correct_side"`
	IDs         [2]int     `json:"ids" yaml:"ids"`
	Probs       [2]float64 `json:"probs" yaml:"probs"`
	Colors      [2]string  `json:"colors" yaml:"colors"`
	Outcomes    [2]int     `json:"outcomes" yaml:"outcomes"`
}

// Place lays out pair's arms without drawing anything. forward=true is the
// heads layout. Outcomes are left zero.
func Place(pair int, forward bool, table ProbabilityTable, colors ColorAssignment) (Options, error) {
	if pair < 0 || pair >= len(table) || pair >= len(colors) {
		return Options{}, fmt.Errorf("Place: pair=%d (table=%d colors=%d): %w",
			pair, len(table), len(colors), ErrUnknownContext)
	}

	probs, cols := table[pair], colors[pair]
	if forward {
		return Options{
			CorrectSide: SideLeft,
			IDs:         [2]int{2 * pair, 2*pair + 1},
			Probs:       probs,
			Colors:      cols,
		}, nil
	}
	return Options{
		CorrectSide: SideRight,
		IDs:         [2]int{2*pair + 1, 2 * pair},
		Probs:       [2]float64{probs[1], probs[0]},
		Colors:      [2]string{cols[1], cols[0]},
	}, nil
}

// Draw returns rewards.High with probability p, else rewards.Low.
func Draw(rng *rand.Rand, p float64, rewards Rewards) int {
	if randutil.Bernoulli(rng, p) {
		return rewards.High
	}
	return rewards.Low
}

// Assign flips the layout coin, places the arms and draws both outcomes
// (left then right). Exactly three draws are consumed from rng.
func Assign(rng *rand.Rand, pair int, table ProbabilityTable, colors ColorAssignment, rewards Rewards) (Options, error) {
	if rng == nil {
		return Options{}, fmt.Errorf("%s: %w", methodAssign, ErrNeedRandSource)
	}

	opts, err := Place(pair, randutil.Coin(rng), table, colors)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", methodAssign, err)
	}
	for i, p := range opts.Probs {
		opts.Outcomes[i] = Draw(rng, p, rewards)
	}

	return opts, nil
}
