// Package ansi prints frames as coloured '#' glyphs with row labels, one
// frame after another, for terminals without a UI framework.
package ansi

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	// Glyph is printed for every cell.
	Glyph = '#'

	resetPos = "\033[H" // move cursor to 0,0
	resetSGR = "\033[0;0m"
)

// palette holds the SGR foreground code per palette colour.
var palette = [core.PaletteSize]string{
	core.ColorBlack:  "30",
	core.ColorRed:    "31",
	core.ColorOrange: "34",
	core.ColorYellow: "33",
	core.ColorGreen:  "32",
	core.ColorCyan:   "36",
	core.ColorPurple: "35",
	core.ColorPink:   "37",
}

// Code returns the SGR foreground code for c, or "" outside the palette.
func Code(c core.Color) string {
	if !c.InPalette() {
		return ""
	}
	return palette[c]
}

// Options configures a Display.
type Options struct {
	Writer io.Writer // defaults to os.Stdout
	// Home moves the cursor to the top-left before each frame so frames
	// overwrite each other instead of scrolling.
	Home bool
	// CRLF ends lines with "\r\n", needed while the terminal is in raw mode.
	CRLF bool
}

// Display renders frames of a fixed size.
type Display struct {
	w      *bufio.Writer
	width  int
	height int
	home   bool
	eol    string
}

// New creates a display for width x height frames.
func New(width, height int, o Options) *Display {
	var w io.Writer = os.Stdout
	if o.Writer != nil {
		w = o.Writer
	}
	eol := "\n"
	if o.CRLF {
		eol = "\r\n"
	}
	return &Display{
		w:      bufio.NewWriter(w),
		width:  width,
		height: height,
		home:   o.Home,
		eol:    eol,
	}
}

// Show prints one frame: a ruler of '=' then each row followed by " : y".
func (d *Display) Show(frame []core.Color) error {
	if len(frame) != d.width*d.height {
		return fmt.Errorf("ansi: frame has %d cells, want %d", len(frame), d.width*d.height)
	}

	if d.home {
		d.w.WriteString(resetPos)
	}
	d.w.WriteString(strings.Repeat("=", d.width))
	d.w.WriteString(d.eol)

	for y := range d.height {
		for _, c := range frame[y*d.width : (y+1)*d.width] {
			if code := Code(c); code != "" {
				fmt.Fprintf(d.w, "\033[0;%sm%c%s", code, Glyph, resetSGR)
			} else {
				d.w.WriteRune(Glyph)
			}
		}
		fmt.Fprintf(d.w, " : %d%s", y, d.eol)
	}

	if err := d.w.Flush(); err != nil {
		return fmt.Errorf("ansi: cannot write frame: %w", err)
	}
	return nil
}
