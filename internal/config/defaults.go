package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Level: LevelConfig{
			Start: 1,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 10,
		},
		Display: DisplayConfig{
			Block:    "[]",
			ShowNext: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
