package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("level:\n  start: 4\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Level.Start)
	assert.Equal(t, 10, cfg.Scoring.PointsPerLine)
	assert.Equal(t, "[]", cfg.Display.Block)
	assert.True(t, cfg.Display.ShowNext)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"zero start level", func(c *TetrisConfig) { c.Level.Start = 0 }},
		{"negative points", func(c *TetrisConfig) { c.Scoring.PointsPerLine = -10 }},
		{"one-rune block", func(c *TetrisConfig) { c.Display.Block = "#" }},
		{"three-rune block", func(c *TetrisConfig) { c.Display.Block = "[#]" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultTetrisConfig()
	cfg.Display.Block = "██"
	assert.NoError(t, cfg.Validate(), "multi-byte runes count as one character each")
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  points_per_line: 25\n"), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Scoring.PointsPerLine)
	assert.Equal(t, 1, cfg.Level.Start)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("level: [oops"), 0o600))
	_, err = LoadTetris(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("level:\n  start: 0\n"), 0o600))
	_, err = LoadTetris(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Level.Start = 7

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "points_per_line: 10")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		start  int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 3},
		{DifficultyHard, 5},
		{DifficultyFixed, 2}, // keeps configured level
		{"", 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			cfg.Level.Start = 2
			ApplyTetrisPreset(&cfg, tc.preset)
			assert.Equal(t, tc.start, cfg.Level.Start)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	_, err = ParsePreset("insane")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
