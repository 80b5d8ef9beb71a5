package core

import (
	"slices"
	"testing"
)

func TestShuffleDeterministicPerSeed(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	a := slices.Clone(base)
	b := slices.Clone(base)
	Shuffle(NewRNG(7), a)
	Shuffle(NewRNG(7), b)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced %v and %v", a, b)
	}

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	if !slices.Equal(sorted, base) {
		t.Fatalf("shuffle is not a permutation: %v", a)
	}
}

func TestCoordWithinBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 500; i++ {
		c := r.Coord(3, 5)
		if c.X < 0 || c.X >= 3 || c.Y < 0 || c.Y >= 5 {
			t.Fatalf("coord %s outside 3x5", c)
		}
	}
}

func TestIntNNonPositive(t *testing.T) {
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d", got)
	}
}
