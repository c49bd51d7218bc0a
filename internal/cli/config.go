package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lapjv/score"
)

// ErrBadConfig is returned when a config file holds out-of-range
// values. User input gets an error, never a panic.
var ErrBadConfig = errors.New("cli: invalid config")

// Config holds the scoring knobs a TOML config file may override.
//
//	zero_penalty = 500.0   # cost for zero-score pairs and padding
//	min_score    = 0.2     # treat scores below this floor as zero
type Config struct {
	ZeroPenalty float64 `toml:"zero_penalty"`
	MinScore    float64 `toml:"min_score"`
}

// defaultConfig mirrors the score package defaults.
func defaultConfig() Config {
	return Config{
		ZeroPenalty: score.DefaultZeroPenalty,
		MinScore:    score.DefaultMinScore,
	}
}

// loadConfig reads the TOML file at path over the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cli: loading config %q: %w", path, err)
	}

	if cfg.ZeroPenalty <= 0 || math.IsNaN(cfg.ZeroPenalty) || math.IsInf(cfg.ZeroPenalty, 0) {
		return Config{}, fmt.Errorf("%w: zero_penalty must be finite and positive, got %v", ErrBadConfig, cfg.ZeroPenalty)
	}
	if cfg.MinScore < 0 || math.IsNaN(cfg.MinScore) || math.IsInf(cfg.MinScore, 0) {
		return Config{}, fmt.Errorf("%w: min_score must be finite and non-negative, got %v", ErrBadConfig, cfg.MinScore)
	}

	return cfg, nil
}

// options translates the config into score options. Values were
// validated by loadConfig, so the constructors cannot panic here.
func (c Config) options() []score.Option {
	opts := []score.Option{score.WithZeroPenalty(c.ZeroPenalty)}
	if c.MinScore > 0 {
		opts = append(opts, score.WithMinScore(c.MinScore))
	}

	return opts
}
