package core

import "math"

const (
	lehmerModulus    = 2147483647
	lehmerMultiplier = 16807

	// MaxSeed is the largest state a Stream can hold and the default upper
	// bound for seed draws.
	MaxSeed = lehmerModulus - 1
)

// Stream is a Park–Miller minimal standard generator. Every derived draw
// consumes exactly one call to Next so a fixed seed and call sequence always
// reproduce the same values.
type Stream struct {
	seed  int64
	state int64
}

// NewStream creates a deterministic stream from the provided seed.
func NewStream(seed int64) *Stream {
	state := seed % lehmerModulus
	if state <= 0 {
		state += MaxSeed
	}
	// -MaxSeed lands on zero after the shift.
	if state == 0 {
		state = MaxSeed
	}
	return &Stream{seed: seed, state: state}
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() int64 { return s.seed }

// State returns the current internal state, always in [1, MaxSeed].
func (s *Stream) State() int64 { return s.state }

// Next advances the stream and returns a float in [0, 1).
func (s *Stream) Next() float64 {
	s.state = s.state * lehmerMultiplier % lehmerModulus
	return float64(s.state-1) / float64(MaxSeed)
}

// Int returns floor(min + Next()*(max-min)), a value in [min, max).
func (s *Stream) Int(min, max int64) int64 {
	return int64(math.Floor(float64(min) + s.Next()*float64(max-min)))
}

// Float returns a value in [min, max).
func (s *Stream) Float(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// Chance reports whether a draw landed at or below p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() <= p
}
