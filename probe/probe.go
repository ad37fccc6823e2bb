// Package probe generates the explicit-knowledge questionnaire shown after the
// choice task: one rating per arm stimulus, in a session-random order.
package probe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcp/internal/randutil"
)

// Phase labels every probe in the emitted data.
const Phase = "explicit"

// DefaultPrompt is the question asked for each stimulus.
const DefaultPrompt = "If you played this machine 10 times, how many times would you win?"

// ErrNeedRandSource indicates a nil *rand.Rand.
var ErrNeedRandSource = errors.New("probe: rng is required")

// ErrBadScale indicates a rating scale with Min > Max, a start outside it or a
// non-positive step.
var ErrBadScale = errors.New("probe: invalid rating scale")

// ErrNoStimuli indicates an empty stimulus list.
var ErrNoStimuli = errors.New("probe: no stimuli")

// Scale is an integer slider.
type Scale struct {
	Min   int `json:"min" yaml:"min"`
	Max   int `json:"max" yaml:"max"`
	Start int `json:"start" yaml:"start"`
	Step  int `json:"step" yaml:"step"`
}

// DefaultScale is the 1..9 slider starting at 5.
func DefaultScale() Scale {
	return Scale{Min: 1, Max: 9, Start: 5, Step: 1}
}

// Validate checks the slider bounds.
func (s Scale) Validate() error {
	if s.Min > s.Max || s.Start < s.Min || s.Start > s.Max || s.Step < 1 {
		return fmt.Errorf("Scale.Validate: %+v: %w", s, ErrBadScale)
	}
	return nil
}

// Labels returns the tick labels Min, Min+Step, ... up to Max.
func (s Scale) Labels() []int {
	if s.Step < 1 || s.Min > s.Max {
		return nil
	}
	out := make([]int, 0, (s.Max-s.Min)/s.Step+1)
	for v := s.Min; v <= s.Max; v += s.Step {
		out = append(out, v)
	}
	return out
}

// DefaultStimuli are the four arm images rated after the task.
func DefaultStimuli() []string {
	return []string{
		"img/machines/machine1.png",
		"img/machines/machine2.png",
		"img/machines/machine5.png",
		"img/machines/machine6.png",
	}
}

// Probe is one rating question.
type Probe struct {
	Index    int    `json:"index" yaml:"index"`
	Stimulus string `json:"stimulus" yaml:"stimulus"`
	Prompt   string `json:"prompt" yaml:"prompt"`
	Scale    Scale  `json:"scale" yaml:"scale"`
	Labels   []int  `json:"labels" yaml:"labels"`
	Phase    string `json:"phase" yaml:"phase"`
}

// Generate shuffles stimuli once and emits one probe per stimulus, 1-based.
// The input slice is not modified.
func Generate(rng *rand.Rand, stimuli []string, scale Scale) ([]Probe, error) {
	if rng == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}
	if len(stimuli) == 0 {
		return nil, fmt.Errorf("Generate: %w", ErrNoStimuli)
	}
	if err := scale.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	order := append([]string(nil), stimuli...)
	randutil.Shuffle(order, rng)

	probes := make([]Probe, len(order))
	for i, s := range order {
		probes[i] = Probe{
			Index:    i + 1,
			Stimulus: s,
			Prompt:   DefaultPrompt,
			Scale:    scale,
			Labels:   scale.Labels(),
			Phase:    Phase,
		}
	}
	return probes, nil
}
