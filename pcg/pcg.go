package pcg

import (
	"math"
	"math/bits"
	rand "math/rand/v2"
)

// multiplier is the 64-bit LCG multiplier from the PCG reference
// implementation (Melissa O'Neill, pcg-random.org).
const multiplier = 6364136223846793005

// Gen is a single PCG-XSH-RR generator: 64 bits of LCG state plus a 64-bit
// stream selector. The zero value is not usable; construct with New.
//
// Gen is not safe for concurrent use.
type Gen struct {
	state uint64
	inc   uint64
}

// *Gen is usable anywhere the standard library expects a random source.
var _ rand.Source = (*Gen)(nil)

// New returns a generator seeded with seed on the stream selected by seq.
// The low bit of the stream selector is forced on, which keeps the
// underlying LCG at full period, so 2^63 distinct streams are available.
// Any seed/seq values are accepted, including zero.
//
// Generators constructed with equal (seed, seq) produce identical output.
func New(seed, seq uint64) *Gen {
	g := &Gen{inc: (seq << 1) | 1}
	// Two-step warm-up: mix the seed through the permutation before the
	// first real draw so low-entropy seeds don't leak into early output.
	g.Uint32()
	g.state += seed
	g.Uint32()
	return g
}

// Uint32 advances the generator and returns the next 32-bit draw.
func (g *Gen) Uint32() uint32 {
	old := g.state
	g.state = old*multiplier + (g.inc | 1)
	// XSH-RR output function: xorshift folds high entropy bits into a
	// 32-bit window, then the otherwise-discarded top 5 bits pick a
	// rotation that breaks up the LCG's linear structure.
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// Uint64 concatenates two draws, high half first.
func (g *Gen) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Float32 returns a float in [0, 1) with full 24-bit mantissa resolution.
func (g *Gen) Float32() float32 {
	return float32(g.Uint32()>>8) * 0x1p-24
}

// Float64 returns a float in [0, 1) with full 53-bit mantissa resolution.
func (g *Gen) Float64() float64 {
	return float64(g.Uint64()>>11) * 0x1p-53
}

// Bool returns the low bit of the next draw.
func (g *Gen) Bool() bool {
	return g.Uint32()&1 == 1
}

// Range returns a uniform integer in [min, max] inclusive, using rejection
// sampling to avoid modulo bias. If min >= max the result is min; a
// degenerate range is tolerated rather than reported.
func (g *Gen) Range(min, max int32) int32 {
	if min >= max {
		return min
	}
	span := uint32(max-min) + 1
	if span == 0 {
		// Full 32-bit span: every draw is already in range.
		return min + int32(g.Uint32())
	}
	bucket := math.MaxUint32 / span
	limit := bucket * span
	x := g.Uint32()
	for x >= limit {
		// Draw landed in the truncated remainder zone that would bias
		// small values; redraw. Rejection probability is under 50%.
		x = g.Uint32()
	}
	return min + int32(x/bucket)
}

// RangeFloat returns a uniform float in the half-open interval [min, max).
// Unlike Range there is no rejection step, so extreme ranges can carry a
// leading-order bias; acceptable for the intended use.
func (g *Gen) RangeFloat(min, max float32) float32 {
	return min + g.Float32()*(max-min)
}

// Chance reports true with probability p. Values of p at or below 0 never
// succeed, at or above 1 always succeed.
func (g *Gen) Chance(p float64) bool {
	return g.Float64() < p
}
