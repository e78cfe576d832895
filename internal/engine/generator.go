package engine

import (
	"math"
	"math/rand"
)

// GeneratorKind discriminates the closed set of piece generation strategies.
type GeneratorKind uint8

const (
	// GenUniform draws every piece independently and uniformly.
	GenUniform GeneratorKind = iota
	// GenBag deals shuffled bags containing each shape `multiplicity` times.
	GenBag
	// GenRecency weights each shape by how long ago it was last dealt,
	// making droughts increasingly unlikely without ever starving a shape.
	GenRecency
	// GenTotalRelative weights each shape against its running total so the
	// overall distribution stays balanced.
	GenTotalRelative
)

func (k GeneratorKind) String() string {
	switch k {
	case GenUniform:
		return "uniform"
	case GenBag:
		return "bag"
	case GenRecency:
		return "recency"
	case GenTotalRelative:
		return "total-relative"
	default:
		return "unknown"
	}
}

// Generator produces an infinite, non-restartable sequence of tetromino
// shapes. It is a tagged variant over the closed strategy set; the RNG is
// supplied per call so the owning Game's seeded source drives all draws and
// replays stay deterministic.
type Generator struct {
	kind GeneratorKind

	// Bag state.
	piecesLeft   [NumTetrominos]uint32
	multiplicity uint32

	// Recency state. Seeded lazily from the game RNG on first draw.
	lastDealt [NumTetrominos]uint32
	seeded    bool

	// TotalRelative state.
	relativeCounts [NumTetrominos]uint32
}

// NewUniform returns a generator drawing uniformly among the seven shapes.
func NewUniform() *Generator {
	return &Generator{kind: GenUniform}
}

// NewBag returns a bag generator containing each shape multiplicity times
// per refill. A multiplicity below 1 is treated as 1.
func NewBag(multiplicity int) *Generator {
	if multiplicity < 1 {
		multiplicity = 1
	}
	g := &Generator{kind: GenBag, multiplicity: uint32(multiplicity)}
	g.refillBag()
	return g
}

// NewRecency returns a recency-weighted generator.
func NewRecency() *Generator {
	return &Generator{kind: GenRecency}
}

// NewTotalRelative returns a running-total balanced generator.
func NewTotalRelative() *Generator {
	return &Generator{kind: GenTotalRelative}
}

// Kind returns the generator's strategy tag.
func (g *Generator) Kind() GeneratorKind {
	return g.kind
}

func (g *Generator) refillBag() {
	for i := range g.piecesLeft {
		g.piecesLeft[i] = g.multiplicity
	}
}

// Next deals the next shape. The sequence continues from wherever the
// generator left off; there is no way to rewind it.
func (g *Generator) Next(rng *rand.Rand) Tetromino {
	switch g.kind {
	case GenBag:
		var candidates [NumTetrominos]int
		n := 0
		for i, left := range g.piecesLeft {
			if left > 0 {
				candidates[n] = i
				n++
			}
		}
		idx := candidates[rng.Intn(n)]
		g.piecesLeft[idx]--
		exhausted := true
		for _, left := range g.piecesLeft {
			if left > 0 {
				exhausted = false
				break
			}
		}
		if exhausted {
			g.refillBag()
		}
		return Tetromino(idx)

	case GenRecency:
		if !g.seeded {
			// Start from a random drought ordering so the opening pieces
			// differ between seeds, like every later draw.
			for i, v := range rng.Perm(NumTetrominos) {
				g.lastDealt[i] = uint32(v)
			}
			g.seeded = true
		}
		var weights [NumTetrominos]float64
		for i, age := range g.lastDealt {
			weights[i] = math.Pow(float64(age), 2.5)
		}
		idx := weightedIndex(rng, weights[:])
		for i := range g.lastDealt {
			g.lastDealt[i]++
		}
		g.lastDealt[idx] = 0
		return Tetromino(idx)

	case GenTotalRelative:
		var weights [NumTetrominos]float64
		for i, count := range g.relativeCounts {
			weights[i] = math.Exp(-float64(count))
		}
		idx := weightedIndex(rng, weights[:])
		g.relativeCounts[idx]++
		min := g.relativeCounts[0]
		for _, c := range g.relativeCounts[1:] {
			if c < min {
				min = c
			}
		}
		if min > 0 {
			for i := range g.relativeCounts {
				g.relativeCounts[i] -= min
			}
		}
		return Tetromino(idx)

	default: // GenUniform
		return Tetromino(rng.Intn(NumTetrominos))
	}
}

// weightedIndex samples an index proportionally to the given non-negative
// weights. At least one weight must be positive.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	// Float roundoff can push r marginally past the last positive weight.
	for i := len(weights) - 1; i > 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
