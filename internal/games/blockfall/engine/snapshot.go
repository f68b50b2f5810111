package engine

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Kind     Kind
	X, Y     uint
	Rotation int
	Seed     uint64
	Subtick  int
	Placed   int
	Resets   int
	Filled   int
}

// Snapshot returns the current snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.Tick,
		Kind:     s.Falling.Kind,
		X:        s.Falling.Pos.X,
		Y:        s.Falling.Pos.Y,
		Rotation: s.Falling.Rotation,
		Seed:     s.Seed,
		Subtick:  s.Subtick,
		Placed:   s.Placed,
		Resets:   s.Resets,
		Filled:   s.Board.FilledCount(),
	}
}
