// Package config provides YAML-based configuration loading and difficulty
// presets for the blockfall variants.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Variant IDs.
const (
	VariantDisplay = "blockfall"      // 10x22 board, gravity gated by a subtick counter
	VariantMock    = "blockfall_mock" // 32x24 board, gravity every tick
)

// Variants lists every known variant ID.
var Variants = []string{VariantDisplay, VariantMock}

var (
	// ErrUnknownVariant is returned for a variant ID with no defaults.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownPreset is returned by ParsePreset for an unrecognised name.
	ErrUnknownPreset = errors.New("unknown difficulty preset")
)

// BlockfallConfig contains all configuration for one blockfall variant.
type BlockfallConfig struct {
	Board     BlockfallBoard     `yaml:"board"`
	Gravity   BlockfallGravity   `yaml:"gravity"`
	Rotation  BlockfallRotation  `yaml:"rotation"`
	Sequencer BlockfallSequencer `yaml:"sequencer"`
	Tick      BlockfallTick      `yaml:"tick"`
	Display   BlockfallDisplay   `yaml:"display"`
}

// BlockfallBoard defines the well size in cells.
type BlockfallBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlockfallGravity defines how often the piece falls a row.
type BlockfallGravity struct {
	Every int `yaml:"every"` // ticks per row; 1 = every tick
}

// BlockfallRotation defines the rotation policy.
type BlockfallRotation struct {
	Policy string `yaml:"policy"` // "permissive" or "strict"
}

// BlockfallSequencer defines the start of the piece sequence.
type BlockfallSequencer struct {
	Seed      uint64 `yaml:"seed"`
	SpawnKind string `yaml:"spawn_kind"`
}

// BlockfallTick defines the fixed step interval.
type BlockfallTick struct {
	IntervalMS int `yaml:"interval_ms"`
}

// BlockfallDisplay holds settings for the hardware display driver.
type BlockfallDisplay struct {
	StrobeDelayUS int `yaml:"strobe_delay_us"` // hold time of the strobe line
}

// Interval returns the tick interval as a duration.
func (c BlockfallConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// StrobeDelay returns the strobe hold time as a duration.
func (c BlockfallConfig) StrobeDelay() time.Duration {
	return time.Duration(c.Display.StrobeDelayUS) * time.Microsecond
}

// Engine converts the config to engine parameters.
func (c BlockfallConfig) Engine() (engine.Config, error) {
	kind, err := engine.ParseKind(c.Sequencer.SpawnKind)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: sequencer.spawn_kind: %w", err)
	}
	return engine.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		GravityEvery: c.Gravity.Every,
		Rotation:     engine.RotationPolicy(c.Rotation.Policy),
		Seed:         c.Sequencer.Seed,
		SpawnKind:    kind,
	}, nil
}

// ValidateBlockfall reports every invalid field of cfg at once.
func ValidateBlockfall(cfg BlockfallConfig) error {
	var errs []error
	if ec, err := cfg.Engine(); err != nil {
		errs = append(errs, err)
	} else if err := ec.Validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Tick.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("config: tick.interval_ms must be positive, got %d", cfg.Tick.IntervalMS))
	}
	if cfg.Display.StrobeDelayUS < 0 {
		errs = append(errs, fmt.Errorf("config: display.strobe_delay_us must not be negative, got %d", cfg.Display.StrobeDelayUS))
	}
	return errors.Join(errs...)
}
