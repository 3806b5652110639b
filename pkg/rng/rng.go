// Package rng provides the deterministic draw stream that settlement
// generation is built on. Every piece of randomness in a settlement (street
// walks, quota draws, placement attempts, names) comes from one Source, so
// the same seed reproduces the same settlement byte for byte.
package rng

import "math"

// Source is a seeded stream of uniform draws backed by a single 64-bit
// state word (splitmix64). It never consults the wall clock or any global
// state; the stream is a pure function of the seed.
type Source struct {
	state uint64
}

// New returns a source seeded to a known baseline.
func New(seed int64) *Source {
	s := &Source{}
	s.Reseed(seed)
	return s
}

// Reseed resets the stream so the next draws replay exactly as they would
// from a fresh source with the same seed.
func (s *Source) Reseed(seed int64) {
	s.state = uint64(seed)
}

// next64 advances the state and returns the mixed output word.
func (s *Source) next64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Next returns the next draw in [0, 1).
func (s *Source) Next() float64 {
	return float64(s.next64()>>11) / (1 << 53)
}

// IntN returns an integer draw in [0, n). Returns 0 for n <= 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Range returns a draw in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// Angle returns a draw in [0, 2π).
func (s *Source) Angle() float64 {
	return s.Next() * 2 * math.Pi
}

// Prob returns true with probability p.
func (s *Source) Prob(p float64) bool {
	return s.Next() < p
}

// Pick returns a uniformly drawn element of items, or the zero value for an
// empty slice (no draw is consumed in that case).
func Pick[T any](s *Source, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[s.IntN(len(items))]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](s *Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffled returns a shuffled copy, leaving items untouched.
func Shuffled[T any](s *Source, items []T) []T {
	out := append([]T(nil), items...)
	Shuffle(s, out)
	return out
}
