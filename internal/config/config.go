// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Level   LevelConfig   `yaml:"level"`
	Scoring ScoringConfig `yaml:"scoring"`
	Display DisplayConfig `yaml:"display"`
}

// LevelConfig defines the level a session starts at.
// The level sets the gravity interval (1000ms / level) and never advances
// on its own.
type LevelConfig struct {
	Start int `yaml:"start"`
}

// ScoringConfig defines points awarded per cleared row.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// DisplayConfig defines how the playfield is drawn.
type DisplayConfig struct {
	Block    string `yaml:"block"`     // Two runes drawn for every occupied cell
	ShowNext bool   `yaml:"show_next"` // Draw the next-piece preview
}

// Validate checks value ranges.
func (c TetrisConfig) Validate() error {
	if c.Level.Start < 1 {
		return fmt.Errorf("%w: level.start must be at least 1, got %d", ErrInvalidConfig, c.Level.Start)
	}
	if c.Scoring.PointsPerLine < 1 {
		return fmt.Errorf("%w: scoring.points_per_line must be positive, got %d", ErrInvalidConfig, c.Scoring.PointsPerLine)
	}
	if n := utf8.RuneCountInString(c.Display.Block); n != 2 {
		return fmt.Errorf("%w: display.block must be exactly 2 characters, got %q", ErrInvalidConfig, c.Display.Block)
	}
	return nil
}
