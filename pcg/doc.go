// Package pcg implements a PCG-XSH-RR pseudo-random number generator with
// a small toolkit of derived operations: uniform integers and floats,
// bias-free bounded ranges, Gaussian sampling, byte and string filling,
// UUID v4 formatting, and Fisher-Yates shuffling.
//
// The generator is fast and statistically strong but NOT cryptographically
// secure: its state can be recovered from observed output. Use crypto/rand
// for anything security-sensitive.
//
// # Explicit Generators
//
// A Gen created with New is fully deterministic: two generators constructed
// with the same seed and sequence produce bit-identical output forever.
// This is the primary API for replay systems and procedural generation:
//
//	g := pcg.New(12345, 1)
//	roll := g.Range(1, 6)
//	name := g.Alphanumeric(12)
//
// A Gen is not safe for concurrent use. Give each goroutine its own
// generator, or synchronize externally.
//
// # Global Convenience API
//
// Package-level functions mirror every Gen operation and draw from an
// internal pool of entropy-seeded generators, so they are safe to call
// from any goroutine with no locking visible to the caller:
//
//	if pcg.Chance(0.1) {
//	    id := pcg.UUID()
//	    ...
//	}
//
// The global surface makes no determinism promise; use an explicit Gen
// when reproducibility matters.
//
// # Interoperability
//
// *Gen satisfies math/rand/v2.Source, so the standard library's wider
// distribution surface is available on top of a deterministic stream:
//
//	r := rand.New(pcg.New(seed, 1))
//	d := r.ExpFloat64()
package pcg
