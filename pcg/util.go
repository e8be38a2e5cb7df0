package pcg

import (
	"encoding/binary"
	"errors"
)

// ErrEmpty is returned by Choice and Pick for a zero-length slice.
var ErrEmpty = errors.New("pcg: empty sequence")

const alphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const hexdigits = "0123456789abcdef"

// Bytes fills p with random bytes, one 32-bit draw per four bytes
// (little-endian) and one extra draw for any 1–3 byte tail.
func (g *Gen) Bytes(p []byte) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, g.Uint32())
		p = p[4:]
	}
	if len(p) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], g.Uint32())
		copy(p, tail[:])
	}
}

// Read implements io.Reader. It fills p completely and never fails.
func (g *Gen) Read(p []byte) (int, error) {
	g.Bytes(p)
	return len(p), nil
}

// FillAlphanumeric overwrites p with characters from [a-zA-Z0-9].
// Characters are picked by plain modulo; the tiny bias against the tail of
// the alphabet is intentional, identifier-like strings don't need strict
// uniformity.
func (g *Gen) FillAlphanumeric(p []byte) {
	for i := range p {
		p[i] = alphanum[g.Uint32()%uint32(len(alphanum))]
	}
}

// Alphanumeric returns a random string of n characters from [a-zA-Z0-9].
func (g *Gen) Alphanumeric(n int) string {
	b := make([]byte, n)
	g.FillAlphanumeric(b)
	return string(b)
}

// UUID returns a random UUID version 4 in its canonical 36-character form,
// xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx with y in [89ab].
func (g *Gen) UUID() string {
	var b [16]byte
	g.Bytes(b[:])

	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10xx

	out := make([]byte, 0, 36)
	for i, v := range b {
		if i == 4 || i == 6 || i == 8 || i == 10 {
			out = append(out, '-')
		}
		out = append(out, hexdigits[v>>4], hexdigits[v&0x0f])
	}
	return string(out)
}

// Shuffle runs a backwards Fisher-Yates over n elements, calling swap for
// each exchange. n must fit in int32. Sequences of length <= 1 are left
// untouched.
func (g *Gen) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.Range(0, int32(i)))
		if i != j {
			swap(i, j)
		}
	}
}

// ShuffleSlice permutes s in place using g. Assuming Range is bias-free,
// every permutation is equally likely.
func ShuffleSlice[S ~[]E, E any](g *Gen, s S) {
	g.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Choice returns a uniformly chosen element of s, or ErrEmpty if s has no
// elements.
func Choice[E any](g *Gen, s []E) (E, error) {
	if len(s) == 0 {
		var zero E
		return zero, ErrEmpty
	}
	return s[g.Range(0, int32(len(s)-1))], nil
}
