// Package fcp generates trial sequences for a free-choice two-armed-bandit
// experiment with contextual bonus offers.
//
// A session alternates between an easy context pair (0.90/0.10 reward
// probabilities) and a hard one (0.70/0.30) over segments of random length.
// Every segment is one shuffled factorial block of context sub-level × bonus
// offer, balanced so no sub-level disappears for too long, and every trial
// carries its arm layout and both pre-drawn outcomes.
//
// Packages:
//
//	sequence/    — Generate: the whole session from one seeded *rand.Rand
//	changepoint/ — random segment boundaries within a slot budget
//	schedule/    — easy/hard interleaving with pool fallback
//	block/       — factorial blocks, reshuffled under a run-length limit
//	runlength/   — LongestRun: the longest absence of any value
//	outcome/     — probability table, arm placement, rewards, colors
//	probe/       — explicit-knowledge rating questions
//	config/      — YAML + environment configuration
//	cmd/fcpgen/  — command-line generator (JSON or YAML output)
//
// Quick example:
//
//	res, err := sequence.Generate(sequence.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(res.Trials), res.Shortfall())
//
// Same seed, same session:
//
//	fcpgen generate --seed 42 --format yaml
package fcp
