package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// RotationPolicy decides whether a rotation may leave the board or overlap
// settled blocks.
type RotationPolicy string

const (
	// RotationPermissive applies every rotation unconditionally.
	RotationPermissive RotationPolicy = "permissive"
	// RotationStrict rejects rotations whose blocks leave the board or overlap.
	RotationStrict RotationPolicy = "strict"
)

// Valid reports whether p is a known policy.
func (p RotationPolicy) Valid() bool {
	return p == RotationPermissive || p == RotationStrict
}

// Config parameterises the engine.
type Config struct {
	Width  int
	Height int
	// GravityEvery is the number of ticks per one-row fall. 1 means every tick.
	GravityEvery int
	Rotation     RotationPolicy
	// Seed is the sequencer seed a fresh or reset game starts from.
	Seed uint64
	// SpawnKind is the kind of the first piece after a fresh start or reset.
	SpawnKind Kind
}

// DefaultConfig returns the 10x22 board with subtick gravity.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       22,
		GravityEvery: 16,
		Rotation:     RotationPermissive,
		Seed:         DefaultSeed,
		SpawnKind:    KindZ,
	}
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width < BlocksPerPiece {
		errs = append(errs, fmt.Errorf("%w: width %d is below %d", ErrInvalidConfig, c.Width, BlocksPerPiece))
	}
	if c.Height < BlocksPerPiece {
		errs = append(errs, fmt.Errorf("%w: height %d is below %d", ErrInvalidConfig, c.Height, BlocksPerPiece))
	}
	if c.GravityEvery < 1 {
		errs = append(errs, fmt.Errorf("%w: gravity period %d must be at least 1", ErrInvalidConfig, c.GravityEvery))
	}
	if !c.Rotation.Valid() {
		errs = append(errs, fmt.Errorf("%w: unknown rotation policy %q", ErrInvalidConfig, c.Rotation))
	}
	if !c.SpawnKind.Valid() {
		errs = append(errs, fmt.Errorf("%w: spawn kind %d is not a piece", ErrInvalidConfig, uint8(c.SpawnKind)))
	}
	return errors.Join(errs...)
}

// SpawnPos returns where new pieces appear: horizontally centred, top row.
func (c Config) SpawnPos() core.Vec {
	return core.V(uint(c.Width/2-2), 0)
}

// Event says how a tick ended.
type Event uint8

const (
	// EventAirborne means the piece took its move and keeps falling.
	EventAirborne Event = iota
	// EventCommitted means the piece landed, was written to the board and the
	// next piece spawned.
	EventCommitted
	// EventReset means the piece landed on the spawn row and the game restarted.
	EventReset
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventAirborne:
		return "airborne"
	case EventCommitted:
		return "committed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Result describes one tick.
type Result struct {
	Event Event
	// BlockedHorizontal is set when a requested shift was rejected.
	BlockedHorizontal bool
	// BlockedRotation is set when a strict-policy rotation was rejected.
	BlockedRotation bool
	// Landed is the piece that landed, valid for EventCommitted and EventReset.
	Landed Piece
	// Next is the kind spawned after a landing.
	Next Kind
}

// State is a running game. It is advanced in place by Step and is not safe
// for concurrent use.
type State struct {
	cfg Config

	Board   *Board
	Falling Piece
	Seed    uint64
	// Subtick counts ticks towards the next gravity row, cycling below
	// GravityEvery.
	Subtick int

	Tick   uint64 // ticks since creation
	Placed int    // pieces committed since the last reset
	Resets int    // board-full and manual resets since creation
}

// New creates a game with an empty board and the configured first piece.
func New(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		cfg:   cfg,
		Board: NewBoard(cfg.Width, cfg.Height),
	}
	s.restart()
	return s, nil
}

// Config returns the configuration the game was created with.
func (s *State) Config() Config {
	return s.cfg
}

// Reset clears the board and re-spawns the first piece with the initial seed.
func (s *State) Reset() {
	s.Resets++
	s.restart()
}

func (s *State) restart() {
	s.Board.Clear()
	s.Falling = NewPiece(s.cfg.SpawnKind, s.cfg.SpawnPos())
	s.Seed = s.cfg.Seed
	s.Subtick = 0
	s.Placed = 0
}

// Step advances the game by one tick. in holds rising edges, normally the
// output of an EdgeDetector.
//
// The order is: horizontal shift, rotation, gravity. A rejected shift or
// rotation leaves the piece as it was. Shift and gravity only build a
// candidate anchor; if the candidate is below the floor or overlaps the
// board the piece is committed at the anchor it had at the start of the
// tick, with any accepted rotation applied.
func (s *State) Step(in Input) Result {
	s.Tick++
	var res Result

	pos := s.Falling.Pos
	dx := 0
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if dx != 0 {
		shifted, ok := pos.Shift(dx, 0)
		if ok && s.fitsHorizontally(s.Falling, shifted) {
			pos = shifted
		} else {
			res.BlockedHorizontal = true
		}
	}

	if in.Rotate {
		r := s.Falling.Rotated()
		if s.cfg.Rotation == RotationStrict && !s.fits(r, pos) {
			res.BlockedRotation = true
		} else {
			s.Falling = r
		}
	}

	dy := 0
	if s.Subtick == s.cfg.GravityEvery-1 {
		dy = 1
	}
	target, _ := pos.Shift(0, dy)
	if s.lands(s.Falling, target) {
		res.Landed = s.Falling
		res.Event = s.commit()
		res.Next = s.Falling.Kind
		return res
	}

	s.Falling.Pos = target
	s.Subtick = (s.Subtick + 1) % s.cfg.GravityEvery
	res.Event = EventAirborne
	return res
}

// fitsHorizontally checks a shifted anchor: every block must be within the
// board columns and must not overlap a settled block. Rows are not checked.
func (s *State) fitsHorizontally(p Piece, pos core.Vec) bool {
	for _, c := range p.CellsAt(pos) {
		if c.X >= uint(s.cfg.Width) || s.Board.Occupied(c) {
			return false
		}
	}
	return true
}

// fits checks every block against both board bounds and settled blocks.
func (s *State) fits(p Piece, pos core.Vec) bool {
	for _, c := range p.CellsAt(pos) {
		if !s.Board.contains(c) || s.Board.Occupied(c) {
			return false
		}
	}
	return true
}

func (s *State) lands(p Piece, pos core.Vec) bool {
	for _, c := range p.CellsAt(pos) {
		if c.Y >= uint(s.cfg.Height) || s.Board.Occupied(c) {
			return true
		}
	}
	return false
}

// commit bakes the falling piece into the board and spawns the next one. A
// piece that never left the spawn row means the board is full and the game
// restarts instead.
func (s *State) commit() Event {
	if s.Falling.Pos.Y == 0 {
		s.Reset()
		return EventReset
	}

	color := s.Falling.Kind.Color()
	for _, c := range s.Falling.Cells() {
		s.Board.Set(c, color)
	}
	s.Placed++

	var next Kind
	s.Seed, next = Next(s.Seed, s.Falling.Kind)
	s.Falling = NewPiece(next, s.cfg.SpawnPos())
	return EventCommitted
}
