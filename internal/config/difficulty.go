package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string is allowed
// and means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// StartLevelForPreset returns the start level for a preset, or 0 when the
// preset keeps the configured level.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// The fixed preset and the empty preset leave the config unchanged.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if level := StartLevelForPreset(preset); level > 0 {
		cfg.Level.Start = level
	}
}
