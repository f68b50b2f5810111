package engine

// Input is one sample of the three piece controls.
// Fed to EdgeDetector it carries levels (held or not); passed to Step it
// carries edges (pressed this tick).
type Input struct {
	Left   bool
	Right  bool
	Rotate bool
}

// EdgeDetector turns level samples into rising edges, remembering the
// previous sample of each control.
type EdgeDetector struct {
	prev Input
}

// Edges returns the controls that went from released to held since the last
// call, and remembers levels for the next one.
func (d *EdgeDetector) Edges(levels Input) Input {
	edges := Input{
		Left:   levels.Left && !d.prev.Left,
		Right:  levels.Right && !d.prev.Right,
		Rotate: levels.Rotate && !d.prev.Rotate,
	}
	d.prev = levels
	return edges
}

// Reset forgets the previous sample, so a control held across the reset
// registers again.
func (d *EdgeDetector) Reset() {
	d.prev = Input{}
}
