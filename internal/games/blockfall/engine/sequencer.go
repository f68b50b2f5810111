package engine

// Sequencer constants.
const (
	// DefaultSeed is the seed every fresh game starts from.
	DefaultSeed uint64 = 14123414123

	hashBasis = 5381

	// remix is XORed into the seed before re-hashing when a draw repeats the
	// current kind.
	remix uint64 = 12397198471298371

	// maxRedraws bounds the retry loop. Seeds that terminate do so within six
	// retries; the rest sit on a hash fixed point and never would.
	maxRedraws = 32
)

// Hash mixes a seed into the next sequencer value.
//
// It is the djb2 string hash applied to the two low bytes of the seed, each
// byte sign-extended as a C char would be. The result always fits in 32 bits.
func Hash(seed uint64) uint64 {
	s := uint32(seed)
	h := uint32(hashBasis)
	for _, c := range [2]int8{int8(s), int8(s >> 8)} {
		h = h<<5 + h + uint32(c)
	}
	return uint64(h)
}

func kindOf(seed uint64) Kind {
	return Kind(seed%NumKinds + 1)
}

// Next draws the kind that follows current and returns it with the advanced
// seed. The result never equals current.
//
// When a draw lands on current the seed is remixed and hashed again. A few
// seeds reach a fixed point of that step without leaving current; after
// maxRedraws attempts the kind following current in ordinal order is returned
// instead, with the seed as it stands.
func Next(seed uint64, current Kind) (uint64, Kind) {
	seed = Hash(seed)
	for range maxRedraws {
		if k := kindOf(seed); k != current {
			return seed, k
		}
		seed = Hash(seed ^ remix)
	}
	if k := kindOf(seed); k != current {
		return seed, k
	}
	return seed, successor(current)
}

func successor(k Kind) Kind {
	if !k.Valid() {
		return KindI
	}
	return Kind(uint8(k)%NumKinds + 1)
}
