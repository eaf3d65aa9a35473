package genetic

import (
	"fmt"
	"math"
	"math/rand"
)

// Defaults used by DefaultOptions.
const (
	DefaultPopulationSize = 250
	DefaultGenerations    = 2000
	DefaultMutationRate   = 0.02
)

// DefaultCheckpoints are the generations reported in addition to the last one.
var DefaultCheckpoints = []int{10, 40, 80, 100}

// Options configures an Engine. Options are read once by NewEngine and are
// never modified by a run.
//
// PopulationSize – number of tours per generation (> 0).
// Generations    – generation budget (>= 0); 0 reports the initial population.
// MutationRate   – per-position probability for PerPosition, within [0,1].
// Checkpoints    – generations (>= 1) at which progress is reported; the last
// generation is always reported as well.
// Seed           – RNG seed; 0 selects the package default seed.
// Rand           – optional RNG; overrides Seed when non-nil.
// Selector, Crossover, Mutator – strategies; nil selects RankPair,
// OnePoint, SingleSwap.
// Reporter       – optional progress sink.
type Options struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	Checkpoints    []int
	Seed           int64
	Rand           *rand.Rand

	Selector  Selector
	Crossover Crossover
	Mutator   Mutator
	Reporter  Reporter
}

// DefaultOptions returns the reference configuration: 250 tours, 2000
// generations, rank-pair selection, one-point crossover, single-swap mutation.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		Checkpoints:    append([]int(nil), DefaultCheckpoints...),
		Selector:       RankPair{},
		Crossover:      OnePoint{},
		Mutator:        SingleSwap{},
	}
}

// Validate checks numeric parameters. Strategies are not inspected.
func (o Options) Validate() error {
	if o.PopulationSize <= 0 {
		return fmt.Errorf("population size %d: %w", o.PopulationSize, ErrEmptyPopulation)
	}
	if o.Generations < 0 {
		return fmt.Errorf("generations %d: %w", o.Generations, ErrBadGenerations)
	}
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("mutation rate %v: %w", o.MutationRate, ErrBadMutationRate)
	}
	for _, c := range o.Checkpoints {
		if c < 1 {
			return fmt.Errorf("checkpoint %d: %w", c, ErrBadCheckpoint)
		}
	}

	return nil
}
