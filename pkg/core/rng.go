package core

import "math/rand/v2"

// Source supplies the randomness consumed by stochastic rules and random
// grid initialisation.
type Source interface {
	// Float64 returns a uniform sample in [0,1).
	Float64() float64
	// Bernoulli returns true with probability p.
	Bernoulli(p float64) bool
}

// Splitter is a Source that can derive independent child streams. A child
// depends only on the parent's seed and the stream id, never on how much of
// the parent has been consumed.
type Splitter interface {
	Source
	Split(stream uint64) Source
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	seed   uint64
	stream uint64
	r      *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return newRNG(uint64(seed), 0)
}

func newRNG(seed, stream uint64) *RNG {
	return &RNG{seed: seed, stream: stream, r: rand.New(rand.NewPCG(seed, stream))}
}

// Float64 returns a uniform sample in [0,1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Bernoulli returns true with probability p. p <= 0 never succeeds and
// p >= 1 always does.
func (r *RNG) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Split derives a child stream. Children with different ids are independent
// PCG sequences over the same seed.
func (r *RNG) Split(stream uint64) Source {
	return newRNG(r.seed, mix(r.stream, stream))
}

// mix is the splitmix64 finaliser applied to the combined stream ids.
func mix(parent, child uint64) uint64 {
	z := parent*0x9e3779b97f4a7c15 + child + 1
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
