package genetic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ga/genetic"
)

// diffPositions counts positions where a and b differ.
func diffPositions(a, b []int) int {
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

func TestSingleSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	m := genetic.SingleSwap{}
	assert.Equal(t, genetic.MutateSwap, m.Name())

	sawNoop := false
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(6)
		order := rng.Perm(n)
		before := append([]int(nil), order...)

		swaps := m.Mutate(order, rng)
		require.True(t, genetic.IsValidPermutation(order, n))
		require.Contains(t, []int{0, 1}, swaps)
		require.Equal(t, 2*swaps, diffPositions(before, order))
		if swaps == 0 {
			sawNoop = true
		}
	}
	assert.True(t, sawNoop, "duplicate indices must be possible and harmless")
	assert.Zero(t, m.Mutate(nil, rng))
}

func TestPerPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))

	order := rng.Perm(50)
	before := append([]int(nil), order...)
	assert.Zero(t, genetic.PerPosition{Rate: 0}.Mutate(order, rng))
	assert.Equal(t, before, order)

	swaps := genetic.PerPosition{Rate: 1}.Mutate(order, rng)
	assert.Greater(t, swaps, 25)
	require.True(t, genetic.IsValidPermutation(order, 50))

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(30)
		o := rng.Perm(n)
		genetic.PerPosition{Rate: 0.3}.Mutate(o, rng)
		require.True(t, genetic.IsValidPermutation(o, n))
	}
}

func TestParseMutator(t *testing.T) {
	m, err := genetic.ParseMutator(genetic.MutateSwap, 0)
	require.NoError(t, err)
	assert.Equal(t, genetic.SingleSwap{}, m)

	m, err = genetic.ParseMutator(genetic.MutatePerPosition, 0.25)
	require.NoError(t, err)
	assert.Equal(t, genetic.PerPosition{Rate: 0.25}, m)

	_, err = genetic.ParseMutator(genetic.MutatePerPosition, 1.5)
	require.ErrorIs(t, err, genetic.ErrBadMutationRate)

	_, err = genetic.ParseMutator("inversion", 0)
	require.ErrorIs(t, err, genetic.ErrUnknownStrategy)
}
