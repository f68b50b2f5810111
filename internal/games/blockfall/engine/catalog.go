package engine

import "github.com/vovakirdan/blockfall/internal/core"

// BlocksPerPiece is the number of cells every piece occupies.
const BlocksPerPiece = 4

// Blocks holds the cell offsets of one piece orientation, relative to the
// piece anchor (its top-left corner).
type Blocks [BlocksPerPiece]core.Vec

// Rotations is the number of rotation values a piece cycles through.
const Rotations = 4

// catalog holds the distinct orientations of every kind, clockwise, each
// normalised so the smallest x and y offsets are zero. A kind with fewer than
// four entries repeats them: rotation r uses entry r mod len.
var catalog = [NumKinds + 1][]Blocks{
	KindI: {
		{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(3, 0)},
		{core.V(0, 0), core.V(0, 1), core.V(0, 2), core.V(0, 3)},
	},
	KindJ: {
		{core.V(0, 2), core.V(1, 2), core.V(1, 1), core.V(1, 0)},
		{core.V(0, 0), core.V(0, 1), core.V(1, 1), core.V(2, 1)},
		{core.V(1, 0), core.V(0, 0), core.V(0, 1), core.V(0, 2)},
		{core.V(2, 1), core.V(2, 0), core.V(1, 0), core.V(0, 0)},
	},
	KindL: {
		// Spawns as ### over #.., foot on the left. Some hardware tables list
		// ### over ..# under this name, which is a J.
		{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(0, 1)},
		{core.V(1, 0), core.V(1, 1), core.V(1, 2), core.V(0, 0)},
		{core.V(2, 1), core.V(1, 1), core.V(0, 1), core.V(2, 0)},
		{core.V(0, 2), core.V(0, 1), core.V(0, 0), core.V(1, 2)},
	},
	KindO: {
		{core.V(0, 0), core.V(1, 0), core.V(0, 1), core.V(1, 1)},
	},
	KindS: {
		{core.V(0, 1), core.V(1, 1), core.V(1, 0), core.V(2, 0)},
		{core.V(0, 0), core.V(0, 1), core.V(1, 1), core.V(1, 2)},
	},
	KindT: {
		{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(1, 1)},
		{core.V(1, 0), core.V(1, 1), core.V(1, 2), core.V(0, 1)},
		{core.V(2, 1), core.V(1, 1), core.V(0, 1), core.V(1, 0)},
		{core.V(0, 2), core.V(0, 1), core.V(0, 0), core.V(1, 1)},
	},
	KindZ: {
		{core.V(0, 0), core.V(1, 0), core.V(1, 1), core.V(2, 1)},
		{core.V(1, 0), core.V(1, 1), core.V(0, 1), core.V(0, 2)},
	},
}

// Shape returns the block offsets of kind k at the given rotation.
// Any rotation value is accepted; it is reduced mod 4 and then by the kind's
// rotational symmetry. Invalid kinds yield a zero Blocks.
func Shape(k Kind, rotation int) Blocks {
	if !k.Valid() {
		return Blocks{}
	}
	states := catalog[k]
	r := rotation % Rotations
	if r < 0 {
		r += Rotations
	}
	return states[r%len(states)]
}

// RotationStates returns the number of visually distinct orientations of k.
func RotationStates(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return len(catalog[k])
}

// Extent returns the width and height of the bounding box of b.
func (b Blocks) Extent() (w, h uint) {
	for _, v := range b {
		w = max(w, v.X+1)
		h = max(h, v.Y+1)
	}
	return w, h
}
