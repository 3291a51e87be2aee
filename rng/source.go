// Package rng provides the single deterministic random stream a run draws
// from. Every method consumes exactly one step of a xorshift64 state, so a
// run can be snapshotted as {seed, draws} and resumed bit-identically.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
)

// Source is a seeded xorshift64 stream with a draw counter. Two Sources with
// equal seed and equal draw counts produce equal futures.
type Source struct {
	seed  uint64
	draws uint64
	state uint64
}

// New creates a Source from seed.
func New(seed uint64) *Source {
	state := seed
	if state == 0 {
		state = 1
	}
	return &Source{seed: seed, state: state}
}

// NewSeed generates a non-deterministic seed for fresh runs.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is unrecoverable on any supported platform
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Resume rebuilds a Source at a recorded stream position.
func Resume(seed, draws uint64) *Source {
	s := New(seed)
	for i := uint64(0); i < draws; i++ {
		s.next()
	}
	return s
}

// Seed returns the initial seed.
func (s *Source) Seed() uint64 { return s.seed }

// Draws returns how many values have been consumed.
func (s *Source) Draws() uint64 { return s.draws }

func (s *Source) next() uint64 {
	x := s.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.state = x
	s.draws++
	return x
}

// Intn returns a value in [0, n). Returns 0 for n <= 0 but still consumes a
// draw, so call sites cannot desync the stream on degenerate input.
func (s *Source) Intn(n int) int {
	v := s.next()
	if n <= 0 {
		return 0
	}
	return int(v % uint64(n))
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return float64(s.next()>>11) / (1 << 53)
}
