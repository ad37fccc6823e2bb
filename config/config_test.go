package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcp/block"
	"github.com/katalvlaran/fcp/config"
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
	"github.com/katalvlaran/fcp/sequence"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 180, cfg.Session.Budget)
	assert.Equal(t, 45, cfg.Session.BlockSize)
	assert.Equal(t, config.BlockConfig{
		MinLength: 28, MaxLength: 35, ContextLevels: 3, MinOffer: 0, MaxOffer: 6, MaxRun: 5,
	}, cfg.Blocks)
	assert.Equal(t, outcome.DefaultTable(), cfg.Outcomes.Probabilities)
	assert.Equal(t, outcome.DefaultRewards(), cfg.Outcomes.Rewards)
	assert.Equal(t, outcome.DefaultPalettes(), cfg.Outcomes.Palettes)
	assert.True(t, cfg.Probes.Enabled)
	assert.Equal(t, probe.DefaultScale(), cfg.Probes.Scale)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
seed: 99
session:
  budget: 60
blocks:
  min_length: 10
  max_length: 12
  max_run: 4
outcomes:
  probabilities:
    - [0.8, 0.2]
    - [0.6, 0.4]
  rewards:
    high: 5
    low: 1
probes:
  enabled: false
logging:
  level: debug
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 60, cfg.Session.Budget)
	assert.Equal(t, 45, cfg.Session.BlockSize, "unset keys keep defaults")
	assert.Equal(t, 10, cfg.Blocks.MinLength)
	assert.Equal(t, 12, cfg.Blocks.MaxLength)
	assert.Equal(t, 4, cfg.Blocks.MaxRun)
	assert.Equal(t, outcome.ProbabilityTable{{0.8, 0.2}, {0.6, 0.4}}, cfg.Outcomes.Probabilities)
	assert.Equal(t, outcome.Rewards{High: 5, Low: 1}, cfg.Outcomes.Rewards)
	assert.False(t, cfg.Probes.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key": "budget: 10\n",
		"wrong type":  "session:\n  budget: many\n",
		"short array": "outcomes:\n  probabilities:\n    - [0.9]\n",
		"broken yaml": "session: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	cfg, err := config.Parse(nil)
	require.NoError(t, err, "an empty document is the default")
	assert.Equal(t, config.Default(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative budget", func(c *config.Config) { c.Session.Budget = -1 }},
		{"block size", func(c *config.Config) { c.Session.BlockSize = 0 }},
		{"length range", func(c *config.Config) { c.Blocks.MinLength, c.Blocks.MaxLength = 30, 20 }},
		{"zero length", func(c *config.Config) { c.Blocks.MinLength = 0 }},
		{"contexts", func(c *config.Config) { c.Blocks.ContextLevels = 0 }},
		{"offers", func(c *config.Config) { c.Blocks.MinOffer = 7 }},
		{"max run", func(c *config.Config) { c.Blocks.MaxRun = 2 }},
		{"short table", func(c *config.Config) { c.Outcomes.Probabilities = c.Outcomes.Probabilities[:1] }},
		{"unordered pair", func(c *config.Config) { c.Outcomes.Probabilities[1] = [2]float64{0.3, 0.7} }},
		{"palettes", func(c *config.Config) { c.Outcomes.Palettes = nil }},
		{"no stimuli", func(c *config.Config) { c.Probes.Stimuli = nil }},
		{"scale", func(c *config.Config) { c.Probes.Scale.Step = 0 }},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	cfg := config.Default()
	cfg.Probes.Enabled = false
	cfg.Probes.Stimuli = nil
	assert.NoError(t, cfg.Validate(), "probe settings are ignored when disabled")
}

func TestValidate_WrapsSubpackageErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Outcomes.Probabilities[0] = [2]float64{1.2, 0}
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, outcome.ErrInvalidProbability)

	cfg = config.Default()
	cfg.Blocks.ContextLevels = 1
	err = cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, block.ErrBadRunLimit, "one sub-level repeats for all seven cells")

	cfg.Blocks.MaxRun = 8
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Setenv("FCP_SEED", "")
	t.Setenv("FCP_BUDGET", "")
	t.Setenv("FCP_LOG_LEVEL", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg, "missing file yields defaults")

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "fcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nsession:\n  budget: 90\n"), 0600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 90, cfg.Session.Budget)

	require.NoError(t, os.WriteFile(path, []byte("nope: 1\n"), 0600))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FCP_SEED", "123")
	t.Setenv("FCP_BUDGET", "30")
	t.Setenv("FCP_LOG_LEVEL", "trace")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, 30, cfg.Session.Budget)
	assert.Equal(t, "trace", cfg.Logging.Level)

	t.Setenv("FCP_SEED", "abc")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	cfg.SessionID = "fixed"
	cfg.Session.Budget = 4
	cfg.Blocks.MinLength, cfg.Blocks.MaxLength = 1, 1

	opts := append(cfg.Options(), sequence.WithSeed(11))
	res, err := sequence.Generate(opts...)
	require.NoError(t, err)
	assert.Equal(t, "fixed", res.SessionID)
	assert.Equal(t, 4, res.Plan.Scheduled())
	assert.Len(t, res.Probes, len(cfg.Probes.Stimuli))

	cfg.Probes.Enabled = false
	res, err = sequence.Generate(append(cfg.Options(), sequence.WithSeed(11))...)
	require.NoError(t, err)
	assert.Empty(t, res.Probes)
}
