package core

import "math/rand"

// Random is the random source games draw from. *rand.Rand satisfies it;
// tests substitute a Sequence.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // game randomness, not crypto
}

// Sequence is a Random that replays a fixed list of values in [0, 1),
// wrapping around at the end. An empty Sequence always yields 0.
type Sequence struct {
	Values []float64
	next   int
}

// NewSequence creates a Sequence over the given values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Intn maps the next value onto [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	return Clamp(i, 0, n-1)
}
