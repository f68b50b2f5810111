package config

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

//go:embed defaults/blockfall_mock.yaml
var defaultBlockfallMockYAML []byte

// DefaultBlockfallConfig returns the built-in configuration of a variant.
func DefaultBlockfallConfig(variant string) (BlockfallConfig, error) {
	base := BlockfallConfig{
		Rotation: BlockfallRotation{Policy: string(engine.RotationPermissive)},
		Sequencer: BlockfallSequencer{
			Seed:      engine.DefaultSeed,
			SpawnKind: engine.KindZ.String(),
		},
		Display: BlockfallDisplay{StrobeDelayUS: 1},
	}

	switch variant {
	case VariantDisplay:
		base.Board = BlockfallBoard{Width: 10, Height: 22}
		base.Gravity.Every = 16
		base.Tick.IntervalMS = 20
	case VariantMock:
		base.Board = BlockfallBoard{Width: 32, Height: 24}
		base.Gravity.Every = 1
		base.Tick.IntervalMS = 100
	default:
		return BlockfallConfig{}, fmt.Errorf("config: %w %q", ErrUnknownVariant, variant)
	}
	return base, nil
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantDisplay:
		return defaultBlockfallYAML
	case VariantMock:
		return defaultBlockfallMockYAML
	default:
		return nil
	}
}
