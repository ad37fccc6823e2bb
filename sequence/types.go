package sequence

import (
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
	"github.com/katalvlaran/fcp/schedule"
)

// Phase labels every choice trial in the emitted data.
const Phase = "experiment"

// Trial is one fully specified choice trial. OptionProbs and OptionColors are
// the context pair's fixed values in forward or reversed order; CorrectSide is
// 1 exactly when the forward order (higher probability on the left) is used.
// Segment is the 1-based scheduled slot whose factorial block the trial
// belongs to.
type Trial struct {
	TrialType      schedule.TrialType `json:"trial_type" yaml:"trial_type"`
	Context        int                `json:"context" yaml:"context"`
	BonusOffer     int                `json:"bonus_offer" yaml:"bonus_offer"`
	CorrectSide    int                `json:"correct_side" yaml:"correct_side"`
	OptionIDs      [2]int             `json:"option_ids" yaml:"option_ids"`
	OptionProbs    [2]float64         `json:"option_probs" yaml:"option_probs"`
	OptionColors   [2]string          `json:"option_colors" yaml:"option_colors"`
	OptionOutcomes [2]int             `json:"option_outcomes" yaml:"option_outcomes"`
	TrialIndex     int                `json:"trial" yaml:"trial"`
	BlockIndex     int                `json:"block" yaml:"block"`
	Segment        int                `json:"segment" yaml:"segment"`
	Phase          string             `json:"phase" yaml:"phase"`
}

// Result is everything a presentation layer needs for one session.
// Seed is set only when the RNG came from WithSeed.
type Result struct {
	SessionID string `json:"session_id" yaml:"session_id"`
	Seed      *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	Table   outcome.ProbabilityTable `json:"probabilities" yaml:"probabilities"`
	Rewards outcome.Rewards          `json:"rewards" yaml:"rewards"`
	Colors  outcome.ColorAssignment  `json:"colors" yaml:"colors"`

	EasyChangePoints []int         `json:"easy_change_points" yaml:"easy_change_points"`
	HardChangePoints []int         `json:"hard_change_points" yaml:"hard_change_points"`
	Plan             schedule.Plan `json:"plan" yaml:"plan"`

	Trials []Trial       `json:"trials" yaml:"trials"`
	Probes []probe.Probe `json:"probes,omitempty" yaml:"probes,omitempty"`
}

// Shortfall is the number of requested trial-type slots the scheduler could
// not fill because both change-point pools ran out. It counts slots, not
// trials: every filled slot emits a whole block, so compare Plan.Scheduled
// with Plan.Requested rather than Produced with the budget.
func (r *Result) Shortfall() int {
	return r.Plan.Shortfall()
}

// Truncated reports whether fewer slots were scheduled than requested. With
// the default budget it is true even though the session holds more trials
// than the budget, since each slot expands to a full block.
func (r *Result) Truncated() bool {
	return r.Shortfall() > 0
}

// Produced is the number of emitted choice trials.
func (r *Result) Produced() int {
	return len(r.Trials)
}
