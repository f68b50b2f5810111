package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	EmptyChar = '·'
	WallChar  = '│'
	FloorChar = '─'
)

const (
	cellW  = 2  // screen columns per board cell
	hudGap = 2  // columns between the well and the HUD
	hudW   = 18 // HUD panel width
)

// Render draws the well, the falling piece and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	bw, bh := g.Canvas()
	wellW := bw*cellW + 2
	wellH := bh + 1

	if dst.Width() < wellW || dst.Height() < wellH {
		g.tooSmall = true
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", wellW, wellH))
		return
	}
	g.tooSmall = false

	withHUD := dst.Width() >= wellW+hudGap+hudW
	ox := (dst.Width() - wellW) / 2
	if withHUD {
		ox = (dst.Width() - wellW - hudGap - hudW) / 2
	}
	oy := (dst.Height() - wellH) / 2

	g.renderWell(dst, ox, oy, bw, bh)
	if withHUD {
		g.renderHUD(dst, ox+wellW+hudGap, oy)
	}

	if g.paused {
		renderOverlay(dst, "PAUSED", "P to resume")
	}
}

func (g *Game) renderWell(dst *core.Screen, ox, oy, bw, bh int) {
	for y := 0; y < bh; y++ {
		dst.SetCell(ox, oy+y, WallChar, core.ColorGray)
		dst.SetCell(ox+bw*cellW+1, oy+y, WallChar, core.ColorGray)
	}
	dst.SetCell(ox, oy+bh, '└', core.ColorGray)
	dst.SetCell(ox+bw*cellW+1, oy+bh, '┘', core.ColorGray)
	for x := 1; x <= bw*cellW; x++ {
		dst.SetCell(ox+x, oy+bh, FloorChar, core.ColorGray)
	}

	frame := make([]core.Color, bw*bh)
	g.Project(frame)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			sx := ox + 1 + x*cellW
			c := frame[y*bw+x]
			if c.IsEmpty() {
				dst.SetCell(sx, oy+y, ' ', core.ColorDefault)
				dst.SetCell(sx+1, oy+y, EmptyChar, core.ColorGray)
				continue
			}
			dst.SetCell(sx, oy+y, BlockChar, c)
			dst.SetCell(sx+1, oy+y, BlockChar, c)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	s := g.Snapshot()
	lines := []string{
		g.Title(),
		"",
		fmt.Sprintf("Piece:  %v", s.Kind),
		fmt.Sprintf("Placed: %d", s.Placed),
		fmt.Sprintf("Resets: %d", s.Resets),
		fmt.Sprintf("Tick:   %d", s.Tick),
		fmt.Sprintf("Seed:   %d", s.Seed),
		"",
		"←/→ move  ↑ rotate",
		"P pause  R reset",
	}
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorCyan
		}
		if i >= len(lines)-2 {
			c = core.ColorGray
		}
		dst.DrawTextColor(x, y+i, line, c)
	}
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 4
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorGray)
	dst.DrawText(r.X+2, r.Y+1, line1)
	dst.DrawTextColor(r.X+2, r.Y+2, line2, core.ColorGray)
}
