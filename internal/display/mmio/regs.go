// Package mmio drives a memory-mapped colour panel. The panel exposes one
// pixel port (colour, index, strobe) plus a button register and a read-only
// geometry register.
package mmio

import "github.com/vovakirdan/blockfall/internal/core"

// Register addresses.
const (
	Base        uint32 = 0x4000_0000
	RegColor           = Base + 0x00 // palette index of the pending pixel
	RegIndex           = Base + 0x04 // row-major cell index of the pending pixel
	RegStrobe          = Base + 0x08 // 0 -> non-zero latches COLOR at INDEX
	RegButtons         = Base + 0x0C // read-only button levels
	RegGeometry        = Base + 0x10 // read-only, width<<16 | height
)

// Button bits in RegButtons.
const (
	ButtonLeft uint32 = 1 << iota
	ButtonRight
	ButtonRotate
)

// Geometry packs a panel size the way RegGeometry reports it.
func Geometry(w, h int) uint32 {
	return uint32(w&0xFFFF)<<16 | uint32(h&0xFFFF)
}

// SplitGeometry unpacks a RegGeometry value.
func SplitGeometry(v uint32) (w, h int) {
	return int(v >> 16), int(v & 0xFFFF)
}

// ButtonBits encodes the movement levels of a frame.
func ButtonBits(f core.InputFrame) uint32 {
	var v uint32
	if f.Has(core.ActionLeft) {
		v |= ButtonLeft
	}
	if f.Has(core.ActionRight) {
		v |= ButtonRight
	}
	if f.Has(core.ActionRotate) {
		v |= ButtonRotate
	}
	return v
}

// Bus is a 32-bit register bus.
type Bus interface {
	Read32(addr uint32) uint32
	Write32(addr, v uint32)
}
