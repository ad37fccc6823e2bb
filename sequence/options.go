// SPDX-License-Identifier: MIT
// Package: fcp/sequence
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors PANIC only on nil pointers/functions; value ranges
//     are checked by Generate and reported as sentinel errors, so values read
//     from configuration files never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Slices are copied on the way in; callers may reuse their buffers.

package sequence

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/fcp/block"
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
)

// Option customizes Generate by mutating a genConfig before generation.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed and records the seed
// in the Result so the session can be replayed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		s := seed
		c.rng = rand.New(rand.NewSource(s))
		c.seed = &s
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// The Result carries no seed in this case.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
		c.seed = nil
	}
}

// WithLogger sets the logger for block and shortfall diagnostics. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sequence: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}

// WithSessionID fixes the session identifier instead of drawing a UUID.
func WithSessionID(id string) Option {
	return func(c *genConfig) {
		c.session = id
	}
}

// WithBudget sets the number of trial-type slots requested.
func WithBudget(n int) Option {
	return func(c *genConfig) {
		c.budget = n
	}
}

// WithBlockLengths sets the inclusive change-point delta range.
func WithBlockLengths(lo, hi int) Option {
	return func(c *genConfig) {
		c.lengthLo, c.lengthHi = lo, hi
	}
}

// WithBlockSize sets the number of trials per reported block index.
func WithBlockSize(n int) Option {
	return func(c *genConfig) {
		c.blockSize = n
	}
}

// WithContextLevels sets the number of nominal context sub-levels (0..n-1).
func WithContextLevels(n int) Option {
	return func(c *genConfig) {
		c.contexts = block.Levels(0, n-1)
	}
}

// WithBonusOffers sets the inclusive bonus-offer range.
func WithBonusOffers(lo, hi int) Option {
	return func(c *genConfig) {
		c.offers = block.Levels(lo, hi)
	}
}

// WithMaxRun sets the run-length threshold that triggers a reshuffle.
func WithMaxRun(n int) Option {
	return func(c *genConfig) {
		c.maxRun = n
	}
}

// WithProbabilities replaces the per-context probability table.
func WithProbabilities(t outcome.ProbabilityTable) Option {
	cp := append(outcome.ProbabilityTable(nil), t...)
	return func(c *genConfig) {
		c.table = cp
	}
}

// WithRewards replaces the high/low reward values.
func WithRewards(r outcome.Rewards) Option {
	return func(c *genConfig) {
		c.rewards = r
	}
}

// WithPalettes replaces the color pairs randomized at session start.
func WithPalettes(p ...outcome.Palette) Option {
	cp := append([]outcome.Palette(nil), p...)
	return func(c *genConfig) {
		c.palettes = cp
		c.colors = nil
	}
}

// WithColors fixes the color assignment; no colors are drawn from the RNG.
func WithColors(a outcome.ColorAssignment) Option {
	cp := append(outcome.ColorAssignment(nil), a...)
	return func(c *genConfig) {
		c.colors = cp
	}
}

// WithProbes sets the stimuli and slider of the explicit-knowledge probes.
func WithProbes(stimuli []string, scale probe.Scale) Option {
	cp := append([]string(nil), stimuli...)
	return func(c *genConfig) {
		c.probes = true
		c.stimuli = cp
		c.scale = scale
	}
}

// WithoutProbes skips the explicit-knowledge probes.
func WithoutProbes() Option {
	return func(c *genConfig) {
		c.probes = false
	}
}
