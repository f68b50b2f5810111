package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the falling piece. Blocks always equals Shape(Kind, Rotation); use
// NewPiece and Rotated rather than assigning Rotation directly.
type Piece struct {
	Kind     Kind
	Pos      core.Vec
	Rotation int
	Blocks   Blocks
}

// NewPiece returns a piece of kind k at pos in rotation 0.
func NewPiece(k Kind, pos core.Vec) Piece {
	return Piece{
		Kind:   k,
		Pos:    pos,
		Blocks: Shape(k, 0),
	}
}

// Rotated returns a copy of p turned one step clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % Rotations
	p.Blocks = Shape(p.Kind, p.Rotation)
	return p
}

// Cells returns the absolute board positions of the piece's blocks.
func (p Piece) Cells() Blocks {
	return p.CellsAt(p.Pos)
}

// CellsAt returns the absolute positions the blocks would occupy with the
// anchor at pos.
func (p Piece) CellsAt(pos core.Vec) Blocks {
	var out Blocks
	for i, b := range p.Blocks {
		out[i] = pos.Add(b)
	}
	return out
}
