// Package rng defines the uniform random source contract the engine
// draws on when choosing within a site's event list (SPEC_FULL.md §6).
// The generator's own algorithm is an external collaborator; this
// package only specifies the interface and a default math/rand-backed
// implementation for tests and the standalone binary.
package rng

import "math/rand"

// Source produces uniform draws in [0, 1).
type Source interface {
	Uniform() float64
}

// MathRand wraps math/rand.Rand to satisfy Source.
type MathRand struct {
	r *rand.Rand
}

// NewMathRand seeds a new generator. Use a fixed seed in tests for
// determinism.
func NewMathRand(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *MathRand) Uniform() float64 {
	return m.r.Float64()
}

// Fixed is a deterministic Source for tests that need to hit an exact
// event by a known cumulative threshold.
type Fixed float64

func (f Fixed) Uniform() float64 {
	return float64(f)
}
