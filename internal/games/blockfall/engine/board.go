package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Board is the grid of settled blocks, stored row-major.
// Empty cells are core.ColorBlack.
type Board struct {
	width  int
	height int
	cells  []core.Color
}

// NewBoard creates an empty board. Non-positive dimensions yield an empty
// zero-sized board.
func NewBoard(width, height int) *Board {
	width = max(width, 0)
	height = max(height, 0)
	return &Board{
		width:  width,
		height: height,
		cells:  make([]core.Color, width*height),
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

func (b *Board) contains(v core.Vec) bool {
	return v.X < uint(b.width) && v.Y < uint(b.height)
}

// Get returns the colour at v, or black when v is off the board.
func (b *Board) Get(v core.Vec) core.Color {
	if !b.contains(v) {
		return core.ColorBlack
	}
	return b.cells[int(v.Y)*b.width+int(v.X)]
}

// Set stores c at v. Writes outside the board are ignored.
func (b *Board) Set(v core.Vec, c core.Color) {
	if !b.contains(v) {
		return
	}
	b.cells[int(v.Y)*b.width+int(v.X)] = c
}

// Occupied reports whether v holds a settled block. Cells off the board are
// never occupied; bounds are checked separately by the stepper.
func (b *Board) Occupied(v core.Vec) bool {
	return !b.Get(v).IsEmpty()
}

// Clear empties every cell.
func (b *Board) Clear() {
	clear(b.cells)
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Cells returns the backing row-major slice. Callers must not retain it
// across steps.
func (b *Board) Cells() []core.Color {
	return b.cells
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height, cells: make([]core.Color, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}
