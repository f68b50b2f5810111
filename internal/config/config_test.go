package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// isolate points the user config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, v := range Variants {
		want, err := DefaultBlockfallConfig(v)
		require.NoError(t, err)

		var got BlockfallConfig
		require.NoError(t, yaml.Unmarshal(GetDefaultYAML(v), &got), v)
		assert.Equal(t, want, got, v)
		assert.NoError(t, ValidateBlockfall(got), v)
	}
}

func TestDefaultVariants(t *testing.T) {
	display, err := DefaultBlockfallConfig(VariantDisplay)
	require.NoError(t, err)
	assert.Equal(t, 10, display.Board.Width)
	assert.Equal(t, 22, display.Board.Height)
	assert.Equal(t, 16, display.Gravity.Every)
	assert.Equal(t, 20*time.Millisecond, display.Interval())

	mock, err := DefaultBlockfallConfig(VariantMock)
	require.NoError(t, err)
	assert.Equal(t, 32, mock.Board.Width)
	assert.Equal(t, 24, mock.Board.Height)
	assert.Equal(t, 1, mock.Gravity.Every)
	assert.Equal(t, 100*time.Millisecond, mock.Interval())

	_, err = DefaultBlockfallConfig("tetris")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Nil(t, GetDefaultYAML("tetris"))
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadBlockfall(VariantMock, "")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, 32, cfg.Board.Width)
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 12\nrotation:\n  policy: strict\n"), 0o600))

	cfg, source, err := LoadBlockfall(VariantDisplay, path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 22, cfg.Board.Height, "unset keys keep the variant default")
	assert.Equal(t, "strict", cfg.Rotation.Policy)
	assert.Equal(t, 16, cfg.Gravity.Every)
}

func TestLoadUserConfigDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".blockfall", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity:\n  every: 4\n"), 0o600))

	cfg, source, err := LoadBlockfall(VariantDisplay, "")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 4, cfg.Gravity.Every)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, _, err := LoadBlockfall(VariantDisplay, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("board: [1, 2"), 0o600))
	_, _, err = LoadBlockfall(VariantDisplay, broken)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board:\n  width: 2\ntick:\n  interval_ms: 0\n"), 0o600))
	_, _, err = LoadBlockfall(VariantDisplay, invalid)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
	assert.ErrorContains(t, err, "tick.interval_ms")

	_, _, err = LoadBlockfall("nope", "")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg, err := DefaultBlockfallConfig(VariantDisplay)
	require.NoError(t, err)
	cfg.Sequencer.SpawnKind = "Q"
	cfg.Tick.IntervalMS = -5
	cfg.Display.StrobeDelayUS = -1

	err = ValidateBlockfall(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "spawn_kind")
	assert.ErrorContains(t, err, "interval_ms")
	assert.ErrorContains(t, err, "strobe_delay_us")
}

func TestEngineConversion(t *testing.T) {
	cfg, err := DefaultBlockfallConfig(VariantDisplay)
	require.NoError(t, err)

	ec, err := cfg.Engine()
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), ec)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		every    int
		expected int
	}{
		{DifficultyEasy, 16, 32},
		{DifficultyNormal, 16, 16},
		{DifficultyHard, 16, 8},
		{DifficultyHard, 1, 1},
		{DifficultyFixed, 16, 16},
	}

	for _, tc := range tests {
		cfg := BlockfallConfig{Gravity: BlockfallGravity{Every: tc.every}}
		ApplyBlockfallPreset(&cfg, tc.preset)
		assert.Equal(t, tc.expected, cfg.Gravity.Every, "%s from %d", tc.preset, tc.every)
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("HARD")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	p, err = ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyFixed, p)

	_, err = ParsePreset("insane")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := DefaultBlockfallConfig(VariantMock)
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "interval_ms: 100")
}
