package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Coord draws a uniform cell inside a w x h rectangle.
func (r *RNG) Coord(w, h int) Coord {
	return Coord{X: r.IntN(w), Y: r.IntN(h)}
}

// Shuffle permutes ids in place using Fisher-Yates.
func Shuffle[T any](r *RNG, ids []T) {
	r.r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r *RNG, items []T) T {
	return items[r.r.IntN(len(items))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
