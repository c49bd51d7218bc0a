package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapjv/score"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, score.DefaultZeroPenalty, cfg.ZeroPenalty)
	assert.Equal(t, score.DefaultMinScore, cfg.MinScore)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeFile(t, "scoring.toml", "zero_penalty = 500.0\nmin_score = 0.2\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.ZeroPenalty)
	assert.Equal(t, 0.2, cfg.MinScore)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeFile(t, "scoring.toml", "min_score = 0.3\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, score.DefaultZeroPenalty, cfg.ZeroPenalty, "unset keys keep defaults")
	assert.Equal(t, 0.3, cfg.MinScore)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeFile(t, "scoring.toml", "zero_penalty = [not toml")

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_BadValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"negative penalty", "zero_penalty = -1.0"},
		{"zero penalty", "zero_penalty = 0.0"},
		{"negative floor", "min_score = -0.5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "scoring.toml", tc.toml)

			_, err := loadConfig(path)
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	// MinScore 0 must not emit a floor option at all.
	assert.Len(t, defaultConfig().options(), 1)
	assert.Len(t, Config{ZeroPenalty: 10, MinScore: 0.5}.options(), 2)
}
