package mmio

import (
	"sync"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// MemBus emulates the panel in memory. Writes to unknown addresses are
// ignored; reads of them return 0.
type MemBus struct {
	mu      sync.Mutex
	regs    *intmap.Map[uint32, uint32]
	frame   []core.Color
	width   int
	latched uint64
	dropped uint64
}

// NewMemBus creates a blank w x h panel.
func NewMemBus(w, h int) *MemBus {
	b := &MemBus{
		regs:  intmap.New[uint32, uint32](8),
		frame: make([]core.Color, w*h),
		width: w,
	}
	b.regs.Put(RegGeometry, Geometry(w, h))
	return b
}

// Read32 implements Bus.
func (b *MemBus) Read32(addr uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, _ := b.regs.Get(addr)
	return v
}

// Write32 implements Bus. A strobe rising edge copies COLOR into the frame
// at INDEX; out-of-range indices or colours are dropped and counted.
func (b *MemBus) Write32(addr, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch addr {
	case RegColor, RegIndex:
		b.regs.Put(addr, v)
	case RegStrobe:
		prev, _ := b.regs.Get(RegStrobe)
		b.regs.Put(RegStrobe, v)
		if prev == 0 && v != 0 {
			b.latch()
		}
	}
}

func (b *MemBus) latch() {
	idx, _ := b.regs.Get(RegIndex)
	color, _ := b.regs.Get(RegColor)
	if uint64(idx) >= uint64(len(b.frame)) || color >= core.PaletteSize {
		b.dropped++
		return
	}
	b.frame[idx] = core.Color(color)
	b.latched++
}

// SetButtons sets the button levels the panel reports.
func (b *MemBus) SetButtons(v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.regs.Put(RegButtons, v&(ButtonLeft|ButtonRight|ButtonRotate))
}

// Frame returns a copy of the latched pixels.
func (b *MemBus) Frame() []core.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.Color(nil), b.frame...)
}

// Pixel returns the latched colour at x, y.
func (b *MemBus) Pixel(x, y int) core.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := y*b.width + x
	if x < 0 || x >= b.width || i < 0 || i >= len(b.frame) {
		return core.ColorBlack
	}
	return b.frame[i]
}

// Latched returns the number of pixels written since creation.
func (b *MemBus) Latched() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latched
}

// Dropped returns the number of strobes with an out-of-range index or colour.
func (b *MemBus) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
