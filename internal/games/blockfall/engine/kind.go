// Package engine implements the blockfall simulation: the piece catalog, the
// next-piece sequencer, the board and the per-tick stepper.
//
// The package is pure. It does no I/O and keeps no package-level mutable state;
// everything a game needs lives in State and is advanced by State.Step, which
// must not be called concurrently.
package engine

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
// The ordinals are fixed: the sequencer maps hash values onto them.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// NumKinds is the number of playable kinds.
const NumKinds = 7

// Kinds lists every playable kind in ordinal order.
var Kinds = [NumKinds]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// Valid reports whether k is a playable kind.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// Color returns the board colour of the kind. Every playable kind has a
// distinct non-black colour; KindNone maps to black.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorBlack
	}
	return core.Color(k)
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseKind parses a kind letter, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("engine: unknown piece kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so kinds read well in YAML.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("engine: cannot marshal piece kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
