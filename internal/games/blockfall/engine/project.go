package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Project overwrites dst with the board and then the falling piece, row-major.
// dst should hold Width*Height colours; a shorter slice receives only the
// cells that fit. Piece blocks off the board are skipped.
func (s *State) Project(dst []core.Color) {
	copy(dst, s.Board.Cells())

	color := s.Falling.Kind.Color()
	for _, c := range s.Falling.Cells() {
		if !s.Board.contains(c) {
			continue
		}
		if i := int(c.Y)*s.cfg.Width + int(c.X); i < len(dst) {
			dst[i] = color
		}
	}
}

// Frame returns a freshly allocated projection.
func (s *State) Frame() []core.Color {
	dst := make([]core.Color, s.cfg.Width*s.cfg.Height)
	s.Project(dst)
	return dst
}
