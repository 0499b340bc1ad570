package kstconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/surmisekit/kst/blim"
	"github.com/surmisekit/kst/downset"
)

// Option customizes a Config after any YAML file has been applied.
// Later options override earlier ones; as in builder's functional
// options, a nil input is always treated as "leave unchanged", never
// an error.
type Option func(*Config)

// Config holds the engine-wide defaults: BLIM guess/slip rates, the
// state-enumeration ceiling, and the default path-synthesis strategy
// order. cmd/kst reads the last two; no subcommand reads BLIMParams.
type Config struct {
	BLIMParams    blim.Params `yaml:"blim_params"`
	MaxStates     int         `yaml:"max_states"`
	StrategyOrder []string    `yaml:"strategy_order"`
}

// Default returns the hardcoded defaults: BLIM g=s=0.1, max_states=10000,
// strategy order breadth-first, depth-first, max-unlock (matching the
// reference implementation's CLI default and pathsyn.DefaultScorers).
func Default() Config {
	return Config{
		BLIMParams:    blim.DefaultParams(),
		MaxStates:     downset.DefaultMaxStates,
		StrategyOrder: []string{"breadth-first", "depth-first", "max-unlock"},
	}
}

// Load reads an optional YAML config file at path, applies it over
// Default(), then applies opts in order. A missing file is not an
// error — it simply means "use defaults" — but a malformed file is.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return applyOptions(cfg, opts), nil
			}
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	return applyOptions(cfg, opts), nil
}

func applyOptions(cfg Config, opts []Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithBLIMParams overrides the BLIM guess/slip parameters.
func WithBLIMParams(p blim.Params) Option {
	return func(c *Config) {
		c.BLIMParams = p
	}
}

// WithMaxStates overrides the enumeration ceiling. Values <= 0 are a
// no-op, matching the reference's "falls back to default on omission"
// behavior rather than producing a zero-capacity enumerator.
func WithMaxStates(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxStates = n
		}
	}
}

// WithStrategyOrder overrides the default path-synthesis strategy
// order. A nil or empty slice is a no-op.
func WithStrategyOrder(order []string) Option {
	return func(c *Config) {
		if len(order) > 0 {
			c.StrategyOrder = order
		}
	}
}
