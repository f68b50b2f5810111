package mmio

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrGeometryMismatch is returned when the panel size differs from the canvas.
var ErrGeometryMismatch = errors.New("geometry mismatch")

// Driver writes frames to a panel one pixel at a time.
type Driver struct {
	bus         Bus
	width       int
	height      int
	strobeDelay time.Duration
	sleep       func(time.Duration)
}

// Option configures a Driver.
type Option func(*Driver)

// WithSleep replaces time.Sleep for the strobe delay.
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Driver) { d.sleep = sleep }
}

// NewDriver checks that the panel on bus is w x h and returns a driver that
// holds the strobe high for strobeDelay per pixel.
func NewDriver(bus Bus, w, h int, strobeDelay time.Duration, opts ...Option) (*Driver, error) {
	if pw, ph := SplitGeometry(bus.Read32(RegGeometry)); pw != w || ph != h {
		return nil, fmt.Errorf("mmio: %w: panel is %dx%d, canvas is %dx%d", ErrGeometryMismatch, pw, ph, w, h)
	}
	d := &Driver{
		bus:         bus,
		width:       w,
		height:      h,
		strobeDelay: strobeDelay,
		sleep:       time.Sleep,
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// Show writes every cell of frame as a colour, index, strobe triple.
func (d *Driver) Show(frame []core.Color) error {
	if len(frame) != d.width*d.height {
		return fmt.Errorf("mmio: frame has %d cells, want %d", len(frame), d.width*d.height)
	}
	for i, c := range frame {
		d.bus.Write32(RegColor, uint32(c))
		d.bus.Write32(RegIndex, uint32(i))
		d.bus.Write32(RegStrobe, 1)
		if d.strobeDelay > 0 {
			d.sleep(d.strobeDelay)
		}
		d.bus.Write32(RegStrobe, 0)
	}
	return nil
}

// ButtonSource samples RegButtons as input levels.
type ButtonSource struct {
	Bus Bus
}

// Poll implements loop.Source.
func (s ButtonSource) Poll() (core.InputFrame, error) {
	f := core.NewInputFrame()
	v := s.Bus.Read32(RegButtons)
	if v&ButtonLeft != 0 {
		f.Set(core.ActionLeft)
	}
	if v&ButtonRight != 0 {
		f.Set(core.ActionRight)
	}
	if v&ButtonRotate != 0 {
		f.Set(core.ActionRotate)
	}
	return f, nil
}
