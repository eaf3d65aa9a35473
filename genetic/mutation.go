package genetic

import (
	"fmt"
	"math/rand"
)

// Strategy names accepted by ParseMutator.
const (
	MutateSwap        = "swap"
	MutatePerPosition = "per-position"
)

// Mutator perturbs a child order in place and returns the number of
// effective swaps (swaps of a position with itself do not count).
// The caller refreshes the tour length afterwards.
type Mutator interface {
	Name() string
	Mutate(order []int, rng *rand.Rand) int
}

// SingleSwap exchanges two uniformly drawn positions, once per child,
// unconditionally. This is the default mutator.
type SingleSwap struct{}

// Name implements Mutator.
func (SingleSwap) Name() string { return MutateSwap }

// Mutate implements Mutator.
func (SingleSwap) Mutate(order []int, rng *rand.Rand) int {
	n := len(order)
	if n == 0 {
		return 0
	}
	i, j := rng.Intn(n), rng.Intn(n)
	if i == j {
		return 0
	}
	order[i], order[j] = order[j], order[i]

	return 1
}

// PerPosition visits every position and, with probability Rate, swaps it
// with a uniformly drawn position.
type PerPosition struct {
	Rate float64
}

// Name implements Mutator.
func (PerPosition) Name() string { return MutatePerPosition }

// Mutate implements Mutator.
//
// Complexity: O(n).
func (m PerPosition) Mutate(order []int, rng *rand.Rand) int {
	var (
		n     = len(order)
		swaps int
		i     int
		j     int
	)
	for i = 0; i < n; i++ {
		if rng.Float64() >= m.Rate {
			continue
		}
		j = rng.Intn(n)
		if j == i {
			continue
		}
		order[i], order[j] = order[j], order[i]
		swaps++
	}

	return swaps
}

// ParseMutator maps a strategy name to its Mutator. rate is used by
// PerPosition only.
func ParseMutator(name string, rate float64) (Mutator, error) {
	switch name {
	case MutateSwap, "":
		return SingleSwap{}, nil
	case MutatePerPosition:
		if !(rate >= 0 && rate <= 1) {
			return nil, ErrBadMutationRate
		}
		return PerPosition{Rate: rate}, nil
	default:
		return nil, unknownStrategy("mutator", name)
	}
}

func unknownStrategy(kind, name string) error {
	return fmt.Errorf("%s %q: %w", kind, name, ErrUnknownStrategy)
}
