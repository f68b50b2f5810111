package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newState(t *testing.T, mutate func(*Config)) *State {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func everyTick(c *Config) { c.GravityEvery = 1 }

func TestNewSpawnsDefaultPiece(t *testing.T) {
	s := newState(t, nil)

	assert.Equal(t, KindZ, s.Falling.Kind)
	assert.Equal(t, core.V(3, 0), s.Falling.Pos)
	assert.Equal(t, 0, s.Falling.Rotation)
	assert.Equal(t, Shape(KindZ, 0), s.Falling.Blocks)
	assert.Equal(t, DefaultSeed, s.Seed)
	assert.Zero(t, s.Board.FilledCount())
	assert.Equal(t, 10, s.Board.Width())
	assert.Equal(t, 22, s.Board.Height())

	mock := newState(t, func(c *Config) { c.Width, c.Height = 32, 24 })
	assert.Equal(t, core.V(14, 0), mock.Falling.Pos)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Width: 2, Height: 22, GravityEvery: 0, Rotation: "sideways", SpawnKind: KindZ})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "width 2")
	assert.Contains(t, err.Error(), "gravity period 0")
	assert.Contains(t, err.Error(), `"sideways"`)

	_, err = New(Config{Width: 10, Height: 22, GravityEvery: 1, Rotation: RotationStrict})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGravityEveryTick(t *testing.T) {
	s := newState(t, everyTick)

	res := s.Step(Input{})
	assert.Equal(t, EventAirborne, res.Event)
	assert.Equal(t, core.V(3, 1), s.Falling.Pos)
	assert.Zero(t, s.Subtick)
}

func TestGravityGatedBySubtick(t *testing.T) {
	s := newState(t, nil)

	for i := 1; i < 16; i++ {
		s.Step(Input{})
		require.Equal(t, uint(0), s.Falling.Pos.Y, "fell early on call %d", i)
		require.Equal(t, i, s.Subtick)
	}

	s.Step(Input{})
	assert.Equal(t, uint(1), s.Falling.Pos.Y, "should fall on the 16th call")
	assert.Zero(t, s.Subtick)
	assert.Equal(t, uint64(16), s.Tick)
}

func TestHorizontalMove(t *testing.T) {
	s := newState(t, nil)
	s.Falling = NewPiece(KindT, core.V(4, 5))

	res := s.Step(Input{Left: true})
	assert.False(t, res.BlockedHorizontal)
	assert.Equal(t, core.V(3, 5), s.Falling.Pos)

	res = s.Step(Input{Right: true})
	assert.False(t, res.BlockedHorizontal)
	assert.Equal(t, core.V(4, 5), s.Falling.Pos)

	res = s.Step(Input{Left: true, Right: true})
	assert.False(t, res.BlockedHorizontal)
	assert.Equal(t, core.V(4, 5), s.Falling.Pos, "opposite presses cancel")
}

func TestHorizontalMoveRejectedAtWalls(t *testing.T) {
	for _, k := range Kinds {
		for r := range Rotations {
			s := newState(t, nil)
			p := NewPiece(k, core.V(0, 5))
			for range r {
				p = p.Rotated()
			}

			s.Falling = p
			res := s.Step(Input{Left: true})
			assert.True(t, res.BlockedHorizontal, "kind %v rot %d left wall", k, r)
			assert.Equal(t, core.V(0, 5), s.Falling.Pos, "kind %v rot %d left wall", k, r)

			w, _ := p.Blocks.Extent()
			p.Pos = core.V(uint(s.Board.Width())-w, 5)
			s.Falling = p
			res = s.Step(Input{Right: true})
			assert.True(t, res.BlockedHorizontal, "kind %v rot %d right wall", k, r)
			assert.Equal(t, p.Pos, s.Falling.Pos, "kind %v rot %d right wall", k, r)
		}
	}
}

func TestHorizontalMoveRejectedByBlocks(t *testing.T) {
	s := newState(t, nil)
	s.Falling = NewPiece(KindO, core.V(4, 5))
	s.Board.Set(core.V(6, 6), core.ColorRed)

	res := s.Step(Input{Right: true})
	assert.True(t, res.BlockedHorizontal)
	assert.Equal(t, core.V(4, 5), s.Falling.Pos)
}

func TestRotationPermissiveIgnoresBounds(t *testing.T) {
	s := newState(t, nil)
	s.Falling = NewPiece(KindI, core.V(9, 5)).Rotated() // vertical against the right wall

	res := s.Step(Input{Rotate: true})
	assert.False(t, res.BlockedRotation)
	assert.Equal(t, 2, s.Falling.Rotation)
	assert.Equal(t, Shape(KindI, 0), s.Falling.Blocks)
	assert.Equal(t, core.V(9, 5), s.Falling.Pos)
}

func TestRotationStrictRejectsOutOfBounds(t *testing.T) {
	s := newState(t, func(c *Config) { c.Rotation = RotationStrict })
	s.Falling = NewPiece(KindI, core.V(9, 5)).Rotated()

	res := s.Step(Input{Rotate: true})
	assert.True(t, res.BlockedRotation)
	assert.Equal(t, 1, s.Falling.Rotation)
	assert.Equal(t, Shape(KindI, 1), s.Falling.Blocks)
}

func TestRotationStrictRejectsOverlap(t *testing.T) {
	s := newState(t, func(c *Config) { c.Rotation = RotationStrict })
	s.Falling = NewPiece(KindT, core.V(3, 5))
	// T at rotation 1 covers (4,5)(4,6)(4,7)(3,6).
	s.Board.Set(core.V(4, 7), core.ColorRed)

	res := s.Step(Input{Rotate: true})
	assert.True(t, res.BlockedRotation)
	assert.Equal(t, 0, s.Falling.Rotation)

	s.Board.Clear()
	res = s.Step(Input{Rotate: true})
	assert.False(t, res.BlockedRotation)
	assert.Equal(t, 1, s.Falling.Rotation)
}

func TestLandingOnFloorCommits(t *testing.T) {
	s := newState(t, everyTick)
	s.Falling = NewPiece(KindZ, core.V(3, 20))

	res := s.Step(Input{})
	require.Equal(t, EventCommitted, res.Event)
	assert.Equal(t, KindZ, res.Landed.Kind)
	assert.Equal(t, core.V(3, 20), res.Landed.Pos)

	for _, c := range []core.Vec{core.V(3, 20), core.V(4, 20), core.V(4, 21), core.V(5, 21)} {
		assert.Equal(t, KindZ.Color(), s.Board.Get(c), "cell %v", c)
	}
	assert.Equal(t, 4, s.Board.FilledCount(), "exactly the piece's cells change")

	assert.Equal(t, KindO, s.Falling.Kind)
	assert.Equal(t, KindO, res.Next)
	assert.Equal(t, core.V(3, 0), s.Falling.Pos)
	assert.Equal(t, uint64(5863490), s.Seed)
	assert.Equal(t, 1, s.Placed)
}

func TestLandingOnBlockCommitsAtCurrentPosition(t *testing.T) {
	s := newState(t, everyTick)
	s.Board.Set(core.V(5, 10), core.ColorRed)
	s.Falling = NewPiece(KindO, core.V(4, 8))

	res := s.Step(Input{})
	require.Equal(t, EventCommitted, res.Event)

	for _, c := range []core.Vec{core.V(4, 8), core.V(5, 8), core.V(4, 9), core.V(5, 9)} {
		assert.Equal(t, KindO.Color(), s.Board.Get(c), "cell %v", c)
	}
	assert.Equal(t, core.ColorRed, s.Board.Get(core.V(5, 10)))
	assert.Equal(t, core.ColorBlack, s.Board.Get(core.V(4, 10)), "rejected candidate must not be written")
	assert.Equal(t, 5, s.Board.FilledCount())
}

func TestCommitOnEmptyCellsChangesExactlyFourCells(t *testing.T) {
	for _, k := range Kinds {
		s := newState(t, everyTick)
		before := s.Board.Clone()
		s.Falling = NewPiece(k, core.V(2, 5))
		_, h := s.Falling.Blocks.Extent()
		s.Falling.Pos.Y = uint(s.Board.Height()) - h

		res := s.Step(Input{})
		require.Equal(t, EventCommitted, res.Event, "kind %v", k)

		changed := 0
		for i, c := range s.Board.Cells() {
			if c != before.Cells()[i] {
				changed++
				assert.Equal(t, k.Color(), c)
			}
		}
		assert.Equal(t, BlocksPerPiece, changed, "kind %v", k)
	}
}

func TestShiftIsDroppedWhenLanding(t *testing.T) {
	s := newState(t, everyTick)
	s.Falling = NewPiece(KindO, core.V(4, 20))

	res := s.Step(Input{Left: true})
	require.Equal(t, EventCommitted, res.Event)
	assert.False(t, res.BlockedHorizontal)
	assert.Equal(t, core.V(4, 20), res.Landed.Pos)
	assert.True(t, s.Board.Occupied(core.V(4, 21)))
	assert.True(t, s.Board.Occupied(core.V(5, 21)))
	assert.False(t, s.Board.Occupied(core.V(3, 21)))
	assert.False(t, s.Board.Occupied(core.V(3, 20)))
}

func TestRotationKeptWhenLanding(t *testing.T) {
	s := newState(t, everyTick)
	s.Falling = NewPiece(KindT, core.V(3, 20))

	// T at rotation 1 is three rows tall; from row 20 it cannot fall.
	res := s.Step(Input{Rotate: true, Right: true})
	require.Equal(t, EventCommitted, res.Event)
	assert.Equal(t, 1, res.Landed.Rotation)
	assert.Equal(t, core.V(3, 20), res.Landed.Pos)
	assert.True(t, s.Board.Occupied(core.V(4, 20)))
	assert.True(t, s.Board.Occupied(core.V(4, 21)))
	assert.True(t, s.Board.Occupied(core.V(3, 21)))
	assert.False(t, s.Board.Occupied(core.V(5, 21)))
}

func TestShiftAndGravityMoveTogetherWhenAirborne(t *testing.T) {
	s := newState(t, everyTick)
	s.Falling = NewPiece(KindO, core.V(4, 10))

	res := s.Step(Input{Left: true})
	require.Equal(t, EventAirborne, res.Event)
	assert.Equal(t, core.V(3, 11), s.Falling.Pos)
}

func TestCommitLeavesSubtick(t *testing.T) {
	s := newState(t, nil)
	s.Falling = NewPiece(KindO, core.V(4, 20))
	s.Subtick = 15

	res := s.Step(Input{})
	require.Equal(t, EventCommitted, res.Event)
	assert.Equal(t, 15, s.Subtick)
}

func TestCommitSkipsCellsOffTheBoard(t *testing.T) {
	s := newState(t, everyTick)
	s.Falling = NewPiece(KindI, core.V(9, 17)).Rotated()

	res := s.Step(Input{Rotate: true})
	require.Equal(t, EventAirborne, res.Event)
	require.Equal(t, core.V(9, 18), s.Falling.Pos)

	for res.Event == EventAirborne {
		res = s.Step(Input{})
	}
	require.Equal(t, EventCommitted, res.Event)
	assert.Equal(t, core.V(9, 21), res.Landed.Pos)
	assert.Equal(t, 1, s.Board.FilledCount())
	assert.True(t, s.Board.Occupied(core.V(9, 21)))
}

func TestLandingOnSpawnRowResets(t *testing.T) {
	s := newState(t, everyTick)
	s.Board.Set(core.V(4, 2), core.ColorGreen)
	s.Board.Set(core.V(0, 21), core.ColorGreen)
	s.Seed = 42
	s.Placed = 7

	res := s.Step(Input{})
	require.Equal(t, EventReset, res.Event)
	assert.Zero(t, s.Board.FilledCount(), "board must be cleared")
	assert.Equal(t, KindZ, s.Falling.Kind)
	assert.Equal(t, core.V(3, 0), s.Falling.Pos)
	assert.Equal(t, DefaultSeed, s.Seed)
	assert.Zero(t, s.Subtick)
	assert.Zero(t, s.Placed)
	assert.Equal(t, 1, s.Resets)
}

func TestManualReset(t *testing.T) {
	s := newState(t, everyTick)
	for range 30 {
		s.Step(Input{})
	}
	require.NotZero(t, s.Board.FilledCount())

	s.Reset()
	assert.Zero(t, s.Board.FilledCount())
	assert.Equal(t, DefaultSeed, s.Seed)
	assert.Equal(t, 1, s.Resets)
	assert.Equal(t, uint64(30), s.Tick, "tick counter survives resets")
}

func TestBoardFillsUpAndResets(t *testing.T) {
	s := newState(t, everyTick)

	resets := 0
	for range 2000 {
		if s.Step(Input{}).Event == EventReset {
			resets++
		}
	}
	assert.Positive(t, resets)
	assert.Equal(t, resets, s.Resets)
}

func TestDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GravityEvery = 2
	g1, err := New(cfg)
	require.NoError(t, err)
	g2, err := New(cfg)
	require.NoError(t, err)

	var d1, d2 EdgeDetector
	for i := range 3000 {
		levels := Input{
			Left:   i%7 < 2,
			Right:  i%11 < 3,
			Rotate: i%5 == 0,
		}
		r1 := g1.Step(d1.Edges(levels))
		r2 := g2.Step(d2.Edges(levels))
		require.Equal(t, r1, r2, "tick %d", i)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, g1.Board.Cells(), g2.Board.Cells())
	assert.Positive(t, g1.Snapshot().Placed+g1.Snapshot().Resets)
}
