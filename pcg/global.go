package pcg

import (
	"sync"
	"sync/atomic"

	"github.com/lox/randkit/internal/entropy"
)

// The package-level API draws from a pool of entropy-seeded generators.
// Go has no thread-local storage; sync.Pool's per-P caches give the same
// property the C thread-local form had — steady-state draws touch no
// shared state — without pinning goroutines to generators.

const goldenRatio64 = 0x9e3779b97f4a7c15

var (
	streamCounter atomic.Uint64
	pool          atomic.Pointer[sync.Pool]
)

func init() {
	pool.Store(newPool())
}

func newPool() *sync.Pool {
	return &sync.Pool{
		New: func() any {
			return New(entropy.Seed(), nextStream())
		},
	}
}

// nextStream derives a distinct stream selector per pooled generator, so
// generators stay on independent sequences even if entropy seeds collide.
func nextStream() uint64 {
	return mix(streamCounter.Add(1) * goldenRatio64)
}

// mix is the splitmix64 finalizer; it spreads a counter across the full
// 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func get() (*sync.Pool, *Gen) {
	p := pool.Load()
	return p, p.Get().(*Gen)
}

// Reseed discards every pooled generator. Subsequent package-level draws
// come from generators freshly seeded from OS entropy. Safe to call
// concurrently with draws.
func Reseed() {
	pool.Store(newPool())
}

// Uint32 returns a random 32-bit value from the shared pool.
func Uint32() uint32 {
	p, g := get()
	v := g.Uint32()
	p.Put(g)
	return v
}

// Uint64 returns a random 64-bit value from the shared pool.
func Uint64() uint64 {
	p, g := get()
	v := g.Uint64()
	p.Put(g)
	return v
}

// Float32 returns a random float32 in [0, 1).
func Float32() float32 {
	p, g := get()
	v := g.Float32()
	p.Put(g)
	return v
}

// Float64 returns a random float64 in [0, 1).
func Float64() float64 {
	p, g := get()
	v := g.Float64()
	p.Put(g)
	return v
}

// Bool returns a random boolean.
func Bool() bool {
	p, g := get()
	v := g.Bool()
	p.Put(g)
	return v
}

// Range returns a uniform integer in [min, max] inclusive.
func Range(min, max int32) int32 {
	p, g := get()
	v := g.Range(min, max)
	p.Put(g)
	return v
}

// RangeFloat returns a uniform float in [min, max).
func RangeFloat(min, max float32) float32 {
	p, g := get()
	v := g.RangeFloat(min, max)
	p.Put(g)
	return v
}

// Chance reports true with probability p.
func Chance(prob float64) bool {
	p, g := get()
	v := g.Chance(prob)
	p.Put(g)
	return v
}

// Gaussian returns a normally distributed value.
func Gaussian(mean, stddev float64) float64 {
	p, g := get()
	v := g.Gaussian(mean, stddev)
	p.Put(g)
	return v
}

// Bytes fills buf with random bytes.
func Bytes(buf []byte) {
	p, g := get()
	g.Bytes(buf)
	p.Put(g)
}

// Alphanumeric returns a random string of n characters from [a-zA-Z0-9].
func Alphanumeric(n int) string {
	p, g := get()
	v := g.Alphanumeric(n)
	p.Put(g)
	return v
}

// UUID returns a random UUID v4 string.
func UUID() string {
	p, g := get()
	v := g.UUID()
	p.Put(g)
	return v
}

// Shuffle permutes s in place.
func Shuffle[S ~[]E, E any](s S) {
	p, g := get()
	ShuffleSlice(g, s)
	p.Put(g)
}

// Pick returns a uniformly chosen element of s, or ErrEmpty if s is empty.
func Pick[E any](s []E) (E, error) {
	p, g := get()
	v, err := Choice(g, s)
	p.Put(g)
	return v, err
}
