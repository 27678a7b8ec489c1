// Package randutil supplies the random numbers used to fill gaps in
// upstream hotel data behind an injectable source.
package randutil

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the normalizer depends on.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// lockedSource guards a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSource returns a time-seeded source safe for concurrent use.
func NewSource() Source {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic source safe for concurrent use.
func NewSeeded(seed int64) Source {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Fixed always returns the same values.
type Fixed struct {
	F float64
	I int
}

func (f Fixed) Float64() float64 { return f.F }

// Intn returns I clamped to [0, n).
func (f Fixed) Intn(n int) int {
	if f.I < 0 {
		return 0
	}
	if f.I >= n {
		return n - 1
	}
	return f.I
}

// Uniform returns a value in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns a value in [lo, hi).
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo)
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

var (
	_ Source = (*lockedSource)(nil)
	_ Source = Fixed{}
)
