// Package random provides a seedable source shared by the simulators.
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is safe for concurrent use.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded with seed. A zero seed picks a time based one.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0,1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Float64() < p
}

// Uniform returns a value in [min,max).
func (s *Source) Uniform(min, max float64) float64 {
	return min + (max-min)*s.Float64()
}

// IntRange returns an integer in [min,max], both inclusive.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.r.Intn(max-min+1)
}

// Intn returns an integer in [0,n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *Source) Bool() bool {
	return s.Intn(2) == 1
}

// Pick returns a random element of items, which must not be empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// Sample returns k distinct elements of items in random order.
func Sample[T any](s *Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	s.mu.Lock()
	perm := s.r.Perm(len(items))
	s.mu.Unlock()

	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = items[perm[i]]
	}
	return out
}
