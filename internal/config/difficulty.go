package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset parses a preset name, case-insensitively. The empty string is
// DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: %w %q", ErrUnknownPreset, name)
}

// ApplyBlockfallPreset scales the gravity period for a preset. Easy falls at
// half speed, hard at double speed (never faster than every tick). Normal and
// fixed keep the configured period.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.Every *= 2
	case DifficultyHard:
		cfg.Gravity.Every = max(cfg.Gravity.Every/2, 1)
	}
}
