package genetic

import (
	"math/rand"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// Breeder turns a parent pair into two evaluated offspring: crossover, then
// mutation of each child, then a fresh length computation. Selectors receive
// a Breeder so they never touch operators, distances or the RNG directly.
type Breeder struct {
	cross Crossover
	mut   Mutator
	dist  matrix.Matrix
	rng   *rand.Rand

	crossings int
	swaps     int
}

// NewBreeder wires the operators. A nil crossover or mutator falls back to
// OnePoint / SingleSwap; a nil rng to the default seed.
func NewBreeder(c Crossover, m Mutator, dist matrix.Matrix, rng *rand.Rand) *Breeder {
	if c == nil {
		c = OnePoint{}
	}
	if m == nil {
		m = SingleSwap{}
	}
	if rng == nil {
		rng = NewRand(0)
	}

	return &Breeder{cross: c, mut: m, dist: dist, rng: rng}
}

// Breed produces two children of p1 and p2.
//
// Complexity: O(n).
func (b *Breeder) Breed(p1, p2 *Tour) (*Tour, *Tour, error) {
	o1, o2 := b.cross.Cross(p1.order, p2.order, b.rng)
	b.crossings++

	b.swaps += b.mut.Mutate(o1, b.rng)
	b.swaps += b.mut.Mutate(o2, b.rng)

	c1, err := newTourOwned(o1, b.dist)
	if err != nil {
		return nil, nil, err
	}
	c2, err := newTourOwned(o2, b.dist)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// Rand exposes the shared RNG to selectors that draw parents at random.
func (b *Breeder) Rand() *rand.Rand { return b.rng }

// Crossings returns how many parent pairs have been crossed so far.
func (b *Breeder) Crossings() int { return b.crossings }

// Swaps returns how many effective mutation swaps have been applied so far.
func (b *Breeder) Swaps() int { return b.swaps }
