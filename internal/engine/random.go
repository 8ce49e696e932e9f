package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source yields uniform samples in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source for seed. Different salts give
// independent streams from the same seed.
func NewSeededSource(seed int64, salt string) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible games.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, salt+":a"), seedWord(seed, salt+":b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// FixedSource replays scripted samples in order and then repeats the last one.
// An empty FixedSource always returns 0.
type FixedSource struct {
	values []float64
	next   int
}

func NewFixedSource(values ...float64) *FixedSource {
	return &FixedSource{values: values}
}

func (s *FixedSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[min(s.next, len(s.values)-1)]
	s.next++
	return v
}

// Draws reports how many samples have been taken.
func (s *FixedSource) Draws() int { return s.next }
