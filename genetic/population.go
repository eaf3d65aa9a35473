package genetic

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// Population is an unordered collection of tours with a fixed target size.
// Selectors build the next generation into a fresh Population and hand it
// over only once it is full.
type Population struct {
	members []*Tour
	size    int
}

// Stats summarizes the tour lengths of a population.
type Stats struct {
	Best   float64
	Worst  float64
	Mean   float64
	StdDev float64
}

// NewPopulation returns an empty population that accepts exactly size tours.
func NewPopulation(size int) (*Population, error) {
	if size <= 0 {
		return nil, ErrEmptyPopulation
	}

	return &Population{members: make([]*Tour, 0, size), size: size}, nil
}

// NewRandomPopulation fills a population of size with random tours over n
// cities. Every tour is validated as a permutation on creation.
//
// Complexity: O(size·n).
func NewRandomPopulation(size, n int, dist matrix.Matrix, rng *rand.Rand) (*Population, error) {
	p, err := NewPopulation(size)
	if err != nil {
		return nil, err
	}
	for !p.Full() {
		t, err := NewRandomTour(n, dist, rng)
		if err != nil {
			return nil, err
		}
		p.members = append(p.members, t)
	}

	return p, nil
}

// Add appends t. It fails with ErrPopulationFull once Len() == Size().
func (p *Population) Add(t *Tour) error {
	if p.Full() {
		return ErrPopulationFull
	}
	p.members = append(p.members, t)

	return nil
}

// Replace puts t at index i.
func (p *Population) Replace(i int, t *Tour) error {
	if i < 0 || i >= len(p.members) {
		return fmt.Errorf("replace %d of %d: %w", i, len(p.members), matrix.ErrOutOfRange)
	}
	p.members[i] = t

	return nil
}

// Len returns the current number of members.
func (p *Population) Len() int { return len(p.members) }

// Size returns the fixed target size.
func (p *Population) Size() int { return p.size }

// Full reports whether Len() == Size().
func (p *Population) Full() bool { return len(p.members) >= p.size }

// At returns member i. It panics on an out-of-range index like a slice does.
func (p *Population) At(i int) *Tour { return p.members[i] }

// Members returns a copy of the member slice (tours are shared).
func (p *Population) Members() []*Tour {
	return append([]*Tour(nil), p.members...)
}

// Fittest returns the member with the minimum length. Ties keep the member
// seen first. Returns nil for an empty population.
//
// Complexity: O(n).
func (p *Population) Fittest() *Tour {
	if len(p.members) == 0 {
		return nil
	}
	best := p.members[0]
	for _, t := range p.members[1:] {
		if t.length < best.length {
			best = t
		}
	}

	return best
}

// Ranked returns the members sorted by ascending length; equal lengths keep
// their insertion order.
//
// Complexity: O(n log n).
func (p *Population) Ranked() []*Tour {
	out := p.Members()
	sort.SliceStable(out, func(i, j int) bool { return out[i].length < out[j].length })

	return out
}

// Stats returns best, worst, mean and sample standard deviation of the
// member lengths. A single member has StdDev 0; an empty population yields
// the zero Stats.
//
// Complexity: O(n).
func (p *Population) Stats() Stats {
	if len(p.members) == 0 {
		return Stats{}
	}
	lengths := make([]float64, len(p.members))
	for i, t := range p.members {
		lengths[i] = t.length
	}

	s := Stats{Best: floats.Min(lengths), Worst: floats.Max(lengths)}
	if len(lengths) == 1 {
		s.Mean = lengths[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(lengths, nil)

	return s
}
