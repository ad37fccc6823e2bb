// SPDX-License-Identifier: MIT
// Package: fcp/sequence
//
// generate.go — the single public entry point of the package.
//
// RNG consumption order (fixed; it defines replay):
//   1. color assignment (skipped with WithColors)
//   2. easy change points, then hard change points
//   3. per scheduled slot: block shuffles until accepted, then per trial
//      coin flip, left outcome, right outcome
//   4. probe order (skipped with WithoutProbes)

package sequence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/fcp/block"
	"github.com/katalvlaran/fcp/changepoint"
	"github.com/katalvlaran/fcp/internal/logging"
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
	"github.com/katalvlaran/fcp/schedule"
)

const methodGenerate = "Generate"

// Generate resolves opts and builds one complete session. Any failure is
// wrapped as "Generate: %w"; a scheduling shortfall is not a failure and is
// reported through Result.Shortfall and a WARN log record instead.
//
// Complexity: O(S·(A·C + C)) for S scheduled slots, C cells per block and A
// expected reshuffles per block.
func Generate(opts ...Option) (*Result, error) {
	cfg := newGenConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	res := &Result{
		SessionID: cfg.session,
		Seed:      cfg.seed,
		Table:     cfg.table,
		Rewards:   cfg.rewards,
	}
	if res.SessionID == "" {
		res.SessionID = uuid.NewString()
	}
	log := cfg.logger.With("session", res.SessionID)

	// 1) Session-scoped colors.
	var err error
	colors := cfg.colors
	if colors == nil {
		if colors, err = outcome.NewColorAssignment(cfg.rng, cfg.palettes); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}
	res.Colors = colors

	// 2) Independent change-point streams.
	if res.EasyChangePoints, err = changepoint.Generate(cfg.rng, cfg.budget, cfg.lengthLo, cfg.lengthHi); err != nil {
		return nil, fmt.Errorf("%s: easy: %w", methodGenerate, err)
	}
	if res.HardChangePoints, err = changepoint.Generate(cfg.rng, cfg.budget, cfg.lengthLo, cfg.lengthHi); err != nil {
		return nil, fmt.Errorf("%s: hard: %w", methodGenerate, err)
	}
	if res.Plan, err = schedule.Interleave(len(res.EasyChangePoints), len(res.HardChangePoints), cfg.budget); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if short := res.Plan.Shortfall(); short > 0 {
		log.Warn("trial-type pools exhausted before budget",
			"requested", res.Plan.Requested,
			"scheduled", res.Plan.Scheduled(),
			"shortfall", short)
	}

	// 3) One factorial block per scheduled slot.
	if res.Trials, err = emit(cfg, res.Plan, colors, log); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	// 4) Explicit-knowledge probes.
	if cfg.probes {
		if res.Probes, err = probe.Generate(cfg.rng, cfg.stimuli, cfg.scale); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}

	log.Info("session generated",
		"trials", len(res.Trials),
		"slots", res.Plan.Scheduled(),
		"easy_change_points", len(res.EasyChangePoints),
		"hard_change_points", len(res.HardChangePoints))

	return res, nil
}

// emit builds, relabels and annotates every block of plan in order.
func emit(cfg genConfig, plan schedule.Plan, colors outcome.ColorAssignment, log *slog.Logger) ([]Trial, error) {
	spec := cfg.blockSpec()
	trials := make([]Trial, 0, plan.Scheduled()*len(spec.Contexts)*len(spec.Offers))

	ctx := context.Background()
	traced := log.Enabled(ctx, logging.LevelTrace)

	for slot, tt := range plan.Types {
		pair := tt.ContextPair()

		if traced {
			slotLog := log.With("slot", slot+1, "type", tt.String())
			spec.OnReject = func(attempt, longest int) {
				slotLog.Log(ctx, logging.LevelTrace, "block rejected",
					"attempt", attempt, "longest_run", longest)
			}
		}
		blk, err := block.Build(cfg.rng, spec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot+1, err)
		}
		log.Debug("block accepted",
			"slot", slot+1, "type", tt.String(), "attempts", blk.Attempts)
		block.Relabel(blk.Cells, pair)

		for _, cell := range blk.Cells {
			opts, err := outcome.Assign(cfg.rng, cell.Context, cfg.table, colors, cfg.rewards)
			if err != nil {
				return nil, fmt.Errorf("slot %d: %w", slot+1, err)
			}
			pos := len(trials) // 0-based position in the session
			trials = append(trials, Trial{
				TrialType:      tt,
				Context:        cell.Context,
				BonusOffer:     cell.BonusOffer,
				CorrectSide:    opts.CorrectSide,
				OptionIDs:      opts.IDs,
				OptionProbs:    opts.Probs,
				OptionColors:   opts.Colors,
				OptionOutcomes: opts.Outcomes,
				TrialIndex:     pos + 1,
				BlockIndex:     pos/cfg.blockSize + 1,
				Segment:        slot + 1,
				Phase:          Phase,
			})
		}
	}

	return trials, nil
}
