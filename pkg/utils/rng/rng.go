// Package rng provides the seeded random source threaded through discovery
// and scenario mutation so that a run can be replayed from its seed.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

var _ rand.Source = (*Source)(nil)

// Source is a mutex guarded *rand.Rand, safe to share between goroutines
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a source from seed, a zero seed picks a time based one
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a random float64 in [0.0, 1.0)
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Intn returns a random int in [0, n), n must be positive
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// IntRange returns a random int in the inclusive range [min, max]
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Uniform returns a uniformly distributed float64 in [min, max)
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Bool returns true with probability p
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}

// Choice returns a uniformly picked element of items, items must not be empty
func Choice[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// Int63 returns a non-negative pseudo-random 63-bit integer, it makes Source a rand.Source
func (s *Source) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

// Seed resets the source to a deterministic state
func (s *Source) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Seed(seed)
}
