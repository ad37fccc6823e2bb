// Package sequence contains unit tests for the configuration primitives
// (genConfig and Option) to ensure defaults and override behavior.
package sequence

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fcp/outcome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the reference-session defaults.
func TestDefaults(t *testing.T) {
	cfg := newGenConfig()

	assert.Nil(t, cfg.rng, "no RNG unless explicitly set")
	assert.Nil(t, cfg.seed)
	assert.NotNil(t, cfg.logger)
	assert.Equal(t, 180, cfg.budget)
	assert.Equal(t, 28, cfg.lengthLo)
	assert.Equal(t, 35, cfg.lengthHi)
	assert.Equal(t, 45, cfg.blockSize)
	assert.Equal(t, []int{0, 1, 2}, cfg.contexts)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, cfg.offers)
	assert.Equal(t, 5, cfg.maxRun)
	assert.Equal(t, outcome.DefaultTable(), cfg.table)
	assert.Equal(t, outcome.Rewards{High: 10, Low: 0}, cfg.rewards)
	assert.Len(t, cfg.palettes, 2)
	assert.Nil(t, cfg.colors)
	assert.True(t, cfg.probes)

	assert.ErrorIs(t, cfg.validate(), ErrNeedRandSource)
}

// TestRNGOptions verifies seeding reproducibility and that WithRand clears
// a previously recorded seed.
func TestRNGOptions(t *testing.T) {
	a := newGenConfig(WithSeed(42))
	b := newGenConfig(WithSeed(42))
	require.NotNil(t, a.seed)
	assert.Equal(t, int64(42), *a.seed)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newGenConfig(WithSeed(42), WithRand(r))
	assert.Same(t, r, c.rng)
	assert.Nil(t, c.seed)

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithLogger(nil) })
}

// TestOverrideOrder checks last-wins semantics and slice copying.
func TestOverrideOrder(t *testing.T) {
	cfg := newGenConfig(WithBudget(10), WithBudget(20), WithBonusOffers(1, 3), WithContextLevels(2))
	assert.Equal(t, 20, cfg.budget)
	assert.Equal(t, []int{1, 2, 3}, cfg.offers)
	assert.Equal(t, []int{0, 1}, cfg.contexts)

	table := outcome.ProbabilityTable{{0.8, 0.2}, {0.6, 0.4}}
	cfg = newGenConfig(WithProbabilities(table))
	table[0][0] = 0.1
	assert.Equal(t, 0.8, cfg.table[0][0], "option must copy its input")

	fixed := outcome.ColorAssignment{{"a", "b"}, {"c", "d"}}
	cfg = newGenConfig(WithColors(fixed), WithPalettes(outcome.DefaultPalettes()...))
	assert.Nil(t, cfg.colors, "WithPalettes re-enables random colors")

	cfg = newGenConfig(WithoutProbes())
	assert.False(t, cfg.probes)
}

// TestValidate covers the checks owned by the package itself.
func TestValidate(t *testing.T) {
	base := []Option{WithSeed(1)}
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"block size", WithBlockSize(0), ErrBadBlockSize},
		{"short table", WithProbabilities(outcome.ProbabilityTable{{0.9, 0.1}}), ErrIncompleteTable},
		{"short palettes", WithPalettes(outcome.Palette{"x", "y"}), ErrIncompleteTable},
		{"short fixed colors", WithColors(outcome.ColorAssignment{{"x", "y"}}), ErrIncompleteTable},
		{"unordered table", WithProbabilities(outcome.ProbabilityTable{{0.1, 0.9}, {0.7, 0.3}}), outcome.ErrUnorderedPair},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newGenConfig(append(base, tc.opt)...)
			assert.ErrorIs(t, cfg.validate(), tc.want)
		})
	}
	assert.NoError(t, newGenConfig(base...).validate())
}
