package engine

import (
	"math/rand"
	"testing"
)

func TestBagDealsCompleteBags(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := NewBag(1)
	for bag := 0; bag < 5; bag++ {
		var counts [NumTetrominos]int
		for i := 0; i < NumTetrominos; i++ {
			counts[gen.Next(rng)]++
		}
		for shape, n := range counts {
			if n != 1 {
				t.Fatalf("Bag %d dealt %v %d times", bag, Tetromino(shape), n)
			}
		}
	}
}

func TestDoubleBagMultiplicity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	gen := NewBag(2)
	var counts [NumTetrominos]int
	for i := 0; i < 2*NumTetrominos; i++ {
		counts[gen.Next(rng)]++
	}
	for shape, n := range counts {
		if n != 2 {
			t.Errorf("Double bag dealt %v %d times, want 2", Tetromino(shape), n)
		}
	}
}

func TestRecencyNeverRepeatsImmediately(t *testing.T) {
	// A freshly dealt shape has zero recency weight, so back-to-back
	// repeats are impossible, not merely unlikely.
	rng := rand.New(rand.NewSource(3))
	gen := NewRecency()
	prev := gen.Next(rng)
	for i := 0; i < 500; i++ {
		next := gen.Next(rng)
		if next == prev {
			t.Fatalf("Recency dealt %v twice in a row at draw %d", next, i)
		}
		prev = next
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	makers := map[string]func() *Generator{
		"uniform":        NewUniform,
		"bag":            func() *Generator { return NewBag(1) },
		"recency":        NewRecency,
		"total-relative": NewTotalRelative,
	}
	for name, newGen := range makers {
		a, b := newGen(), newGen()
		rngA := rand.New(rand.NewSource(99))
		rngB := rand.New(rand.NewSource(99))
		for i := 0; i < 200; i++ {
			if x, y := a.Next(rngA), b.Next(rngB); x != y {
				t.Errorf("%s: sequences diverged at draw %d: %v vs %v", name, i, x, y)
				break
			}
		}
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	weights := []float64{0, 1, 0}
	for i := 0; i < 100; i++ {
		if got := weightedIndex(rng, weights); got != 1 {
			t.Fatalf("weightedIndex picked zero-weight index %d", got)
		}
	}
}
