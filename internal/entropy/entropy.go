// Package entropy acquires 64-bit seed material from the operating system,
// with an in-process fallback so that seeding can never fail outright.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"reflect"

	"github.com/coder/quartz"
)

// Seeder produces seeds from a random byte source, falling back to a
// clock/address mix when the source is unavailable. The zero value is not
// usable; construct with NewSeeder.
type Seeder struct {
	reader io.Reader
	clock  quartz.Clock
}

// NewSeeder returns a Seeder reading from crypto/rand. A nil clock means
// the real clock; tests inject a quartz mock to pin the fallback path.
func NewSeeder(clock quartz.Clock) *Seeder {
	return NewSeederWithReader(crand.Reader, clock)
}

// NewSeederWithReader returns a Seeder reading seed bytes from r.
func NewSeederWithReader(r io.Reader, clock quartz.Clock) *Seeder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Seeder{reader: r, clock: clock}
}

// Seed returns 64 bits of seed material. It reads the byte source at most
// once and never fails: if the read errors, the result degrades to wall
// clock nanoseconds mixed with a process-local allocation address. The
// fallback is unpredictable enough for stream diversity, not for security.
func (s *Seeder) Seed() uint64 {
	var b [8]byte
	if _, err := io.ReadFull(s.reader, b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}
	return s.fallback()
}

func (s *Seeder) fallback() uint64 {
	marker := new(uint64)
	addr := uint64(reflect.ValueOf(marker).Pointer())
	return uint64(s.clock.Now().UnixNano()) ^ addr
}

var defaultSeeder = NewSeeder(nil)

// Seed returns 64 bits of seed material from the default Seeder.
func Seed() uint64 {
	return defaultSeeder.Seed()
}
