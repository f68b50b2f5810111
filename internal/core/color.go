package core

// Color is a palette index. The first PaletteSize entries are the display
// palette shared by the board, the render buffer and every display driver;
// ColorBlack doubles as the empty cell. The entries after the palette are
// screen-only colours used for text and chrome.
type Color uint8

// Display palette.
const (
	ColorBlack Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorPurple
	ColorPink

	// PaletteSize is the number of colours a display driver must support.
	PaletteSize = 8
)

// Screen-only colours.
const (
	ColorDefault Color = iota + PaletteSize
	ColorGray
)

// IsEmpty reports whether the colour marks an empty cell.
func (c Color) IsEmpty() bool {
	return c == ColorBlack
}

// InPalette reports whether c is one of the display palette entries.
func (c Color) InPalette() bool {
	return c < PaletteSize
}

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorPurple:
		return "purple"
	case ColorPink:
		return "pink"
	case ColorDefault:
		return "default"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
