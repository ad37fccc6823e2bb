// SPDX-License-Identifier: MIT
// Package: fcp/sequence
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • Defaults reproduce the reference session and are documented; no globals.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng          = nil         (Generate requires WithSeed/WithRand)
//   • budget       = 180         trial-type slots requested
//   • block length = [28,35]     change-point deltas
//   • block size   = 45          trials per reported block index
//   • contexts     = {0,1,2}     nominal balancing sub-levels
//   • offers       = {0..6}      bonus-offer levels
//   • max run      = 5           reshuffle threshold
//   • table        = 0.90/0.10, 0.70/0.30
//   • rewards      = 10 / 0
//   • palettes     = red/purple, green/pink (order randomized per session)

package sequence

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/fcp/block"
	"github.com/katalvlaran/fcp/internal/logging"
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
	"github.com/katalvlaran/fcp/schedule"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultBudget        = 180
	DefaultMinLength     = 28
	DefaultMaxLength     = 35
	DefaultBlockSize     = 45
	DefaultContextLevels = 3
	DefaultMinOffer      = 0
	DefaultMaxOffer      = 6
	DefaultMaxRun        = 5
)

// trialTypes is the number of context pairs the table and palettes must cover.
const trialTypes = int(schedule.Hard) + 1

// genConfig aggregates all knobs used by Generate.
type genConfig struct {
	rng     *rand.Rand
	seed    *int64
	logger  *slog.Logger
	session string

	budget    int
	lengthLo  int
	lengthHi  int
	blockSize int

	contexts []int
	offers   []int
	maxRun   int

	table    outcome.ProbabilityTable
	rewards  outcome.Rewards
	palettes []outcome.Palette
	colors   outcome.ColorAssignment // fixed assignment; nil → drawn from palettes

	probes  bool
	stimuli []string
	scale   probe.Scale
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		logger:    logging.Discard(),
		budget:    DefaultBudget,
		lengthLo:  DefaultMinLength,
		lengthHi:  DefaultMaxLength,
		blockSize: DefaultBlockSize,
		contexts:  block.Levels(0, DefaultContextLevels-1),
		offers:    block.Levels(DefaultMinOffer, DefaultMaxOffer),
		maxRun:    DefaultMaxRun,
		table:     outcome.DefaultTable(),
		rewards:   outcome.DefaultRewards(),
		palettes:  outcome.DefaultPalettes(),
		probes:    true,
		stimuli:   probe.DefaultStimuli(),
		scale:     probe.DefaultScale(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// blockSpec projects the block-constructor settings.
func (c genConfig) blockSpec() block.Spec {
	return block.Spec{Contexts: c.contexts, Offers: c.offers, MaxRun: c.maxRun}
}

// validate checks everything Generate cannot delegate to a sub-package
// before any randomness is consumed.
func (c genConfig) validate() error {
	if c.rng == nil {
		return ErrNeedRandSource
	}
	if c.blockSize < 1 {
		return fmt.Errorf("block size %d: %w", c.blockSize, ErrBadBlockSize)
	}
	if len(c.table) < trialTypes {
		return fmt.Errorf("%d probability pairs: %w", len(c.table), ErrIncompleteTable)
	}
	if err := c.table.Validate(); err != nil {
		return err
	}
	if c.colors != nil {
		if len(c.colors) < trialTypes {
			return fmt.Errorf("%d fixed colors: %w", len(c.colors), ErrIncompleteTable)
		}
	} else if len(c.palettes) < trialTypes {
		return fmt.Errorf("%d palettes: %w", len(c.palettes), ErrIncompleteTable)
	}
	if err := c.blockSpec().Validate(); err != nil {
		return err
	}
	if c.probes {
		if err := c.scale.Validate(); err != nil {
			return err
		}
	}
	return nil
}
