// Package sequence assembles a complete free-choice two-armed-bandit session:
// the trial-by-trial list of contexts, bonus offers, arm placements and
// pre-drawn outcomes that a presentation layer plays back verbatim.
//
// A session is built in four steps, each consuming the same *rand.Rand:
//
//   - Colors: each context pair receives a session-fixed color pair
//     (outcome.NewColorAssignment).
//   - Change points: two independent streams, one per trial type, split the
//     requested slot budget into lengths drawn from [28,35]
//     (changepoint.Generate).
//   - Schedule: slots alternate easy/hard, falling back to the other pool when
//     one is exhausted (schedule.Interleave). Slots left unfilled are the
//     shortfall, reported on the Result and logged at WARN.
//   - Blocks: every scheduled slot yields one shuffled 3×7 factorial block of
//     context sub-level × bonus offer, reshuffled until no sub-level is absent
//     for MaxRun or more trials (block.Build), then relabeled to the slot's
//     context pair. Each trial gets a random arm layout and two pre-drawn
//     outcomes (outcome.Assign).
//
// Optionally the session ends with one explicit-knowledge probe per arm
// stimulus (probe.Generate).
//
// Determinism:
//
//   - Generate requires WithSeed or WithRand; there is no global RNG.
//   - The same seed and options produce an identical Result, except for the
//     random session UUID (fix it with WithSessionID).
//
// Errors:
//
//   - ErrNeedRandSource, ErrBadBlockSize, ErrIncompleteTable for settings
//     owned by this package.
//   - Sentinels of changepoint, block, outcome and probe are wrapped with %w
//     and remain matchable via errors.Is.
//
// Example:
//
//	res, err := sequence.Generate(sequence.WithSeed(7))
//	if err != nil {
//		return err
//	}
//	for _, t := range res.Trials {
//		fmt.Println(t.TrialIndex, t.TrialType, t.BonusOffer, t.OptionProbs)
//	}
package sequence
