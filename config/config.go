// Package config loads fcpgen session settings from YAML and environment
// variables and translates them into sequence options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fcp/block"
	"github.com/katalvlaran/fcp/outcome"
	"github.com/katalvlaran/fcp/probe"
	"github.com/katalvlaran/fcp/sequence"
)

// ErrInvalidConfig is wrapped by every Validate and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all fcpgen settings.
type Config struct {
	// Seed drives the session RNG. 0 asks the CLI to derive one from the clock.
	Seed int64 `json:"seed" yaml:"seed"`

	// SessionID fixes the session identifier. Empty means a random UUID.
	SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`

	Session  SessionConfig `json:"session" yaml:"session"`
	Blocks   BlockConfig   `json:"blocks" yaml:"blocks"`
	Outcomes OutcomeConfig `json:"outcomes" yaml:"outcomes"`
	Probes   ProbeConfig   `json:"probes" yaml:"probes"`
	Logging  LoggingConfig `json:"logging" yaml:"logging"`
}

// SessionConfig sizes the session.
type SessionConfig struct {
	// Budget is the number of trial-type slots requested.
	Budget int `json:"budget" yaml:"budget"`

	// BlockSize is the number of trials per reported block index.
	BlockSize int `json:"block_size" yaml:"block_size"`
}

// BlockConfig controls change points and factorial blocks.
type BlockConfig struct {
	MinLength     int `json:"min_length" yaml:"min_length"`
	MaxLength     int `json:"max_length" yaml:"max_length"`
	ContextLevels int `json:"context_levels" yaml:"context_levels"`
	MinOffer      int `json:"min_offer" yaml:"min_offer"`
	MaxOffer      int `json:"max_offer" yaml:"max_offer"`

	// MaxRun is the absence-run threshold that forces a reshuffle. It must be
	// at least ContextLevels.
	MaxRun int `json:"max_run" yaml:"max_run"`
}

// OutcomeConfig sets arm probabilities, payoffs and colors.
type OutcomeConfig struct {
	// Probabilities holds one high-first pair per trial type (easy, hard).
	Probabilities outcome.ProbabilityTable `json:"probabilities" yaml:"probabilities"`
	Rewards       outcome.Rewards          `json:"rewards" yaml:"rewards"`
	Palettes      []outcome.Palette        `json:"palettes" yaml:"palettes"`
}

// ProbeConfig configures the explicit-knowledge questionnaire.
type ProbeConfig struct {
	Enabled bool        `json:"enabled" yaml:"enabled"`
	Stimuli []string    `json:"stimuli" yaml:"stimuli"`
	Scale   probe.Scale `json:"scale" yaml:"scale"`
}

// LoggingConfig configures diagnostics written to stderr.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", "trace",
	// "warn" or "error".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config reproducing the reference session.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Budget:    sequence.DefaultBudget,
			BlockSize: sequence.DefaultBlockSize,
		},
		Blocks: BlockConfig{
			MinLength:     sequence.DefaultMinLength,
			MaxLength:     sequence.DefaultMaxLength,
			ContextLevels: sequence.DefaultContextLevels,
			MinOffer:      sequence.DefaultMinOffer,
			MaxOffer:      sequence.DefaultMaxOffer,
			MaxRun:        sequence.DefaultMaxRun,
		},
		Outcomes: OutcomeConfig{
			Probabilities: outcome.DefaultTable(),
			Rewards:       outcome.DefaultRewards(),
			Palettes:      outcome.DefaultPalettes(),
		},
		Probes: ProbeConfig{
			Enabled: true,
			Stimuli: probe.DefaultStimuli(),
			Scale:   probe.DefaultScale(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path (if set and present) over the defaults, then applies
// environment variable overrides.
// Order: defaults -> file -> FCP_* environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if cfg, err = Parse(data); err != nil {
				return nil, fmt.Errorf("loading %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// keep defaults
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults. Keys not present keep their default
// values; unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parsing: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can produce a session.
func (c *Config) Validate() error {
	if c.Session.Budget < 0 {
		return invalid("budget must be non-negative, got %d", c.Session.Budget)
	}
	if c.Session.BlockSize < 1 {
		return invalid("block_size must be positive, got %d", c.Session.BlockSize)
	}

	b := c.Blocks
	if b.MinLength < 1 || b.MaxLength < b.MinLength {
		return invalid("block length range [%d,%d] must satisfy 1 <= min <= max", b.MinLength, b.MaxLength)
	}
	if b.ContextLevels < 1 {
		return invalid("context_levels must be positive, got %d", b.ContextLevels)
	}
	if b.MaxOffer < b.MinOffer {
		return invalid("bonus offer range [%d,%d] is empty", b.MinOffer, b.MaxOffer)
	}
	if b.MaxRun < b.ContextLevels {
		return invalid("max_run %d must be at least context_levels %d", b.MaxRun, b.ContextLevels)
	}
	spec := block.Spec{
		Contexts: block.Levels(0, b.ContextLevels-1),
		Offers:   block.Levels(b.MinOffer, b.MaxOffer),
		MaxRun:   b.MaxRun,
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	o := c.Outcomes
	if len(o.Probabilities) < 2 {
		return invalid("probabilities need an easy and a hard pair, got %d", len(o.Probabilities))
	}
	if err := o.Probabilities.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(o.Palettes) < 2 {
		return invalid("palettes need an easy and a hard pair, got %d", len(o.Palettes))
	}

	if c.Probes.Enabled {
		if len(c.Probes.Stimuli) == 0 {
			return invalid("probes are enabled but no stimuli are listed")
		}
		if err := c.Probes.Scale.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return invalid("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}

	return nil
}

// Options translates the configuration into sequence options. The RNG and
// logger are left to the caller.
func (c *Config) Options() []sequence.Option {
	opts := []sequence.Option{
		sequence.WithBudget(c.Session.Budget),
		sequence.WithBlockSize(c.Session.BlockSize),
		sequence.WithBlockLengths(c.Blocks.MinLength, c.Blocks.MaxLength),
		sequence.WithContextLevels(c.Blocks.ContextLevels),
		sequence.WithBonusOffers(c.Blocks.MinOffer, c.Blocks.MaxOffer),
		sequence.WithMaxRun(c.Blocks.MaxRun),
		sequence.WithProbabilities(c.Outcomes.Probabilities),
		sequence.WithRewards(c.Outcomes.Rewards),
		sequence.WithPalettes(c.Outcomes.Palettes...),
	}
	if c.SessionID != "" {
		opts = append(opts, sequence.WithSessionID(c.SessionID))
	}
	if c.Probes.Enabled {
		opts = append(opts, sequence.WithProbes(c.Probes.Stimuli, c.Probes.Scale))
	} else {
		opts = append(opts, sequence.WithoutProbes())
	}
	return opts
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FCP_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: FCP_SEED=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Seed = n
	}

	if v := os.Getenv("FCP_BUDGET"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FCP_BUDGET=%q: %w", ErrInvalidConfig, v, err)
		}
		cfg.Session.Budget = n
	}

	if v := os.Getenv("FCP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return nil
}
