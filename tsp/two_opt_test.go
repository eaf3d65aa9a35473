package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ga/tsp"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	d := points(t, 0, 0, 10, 0, 10, 10, 0, 10)
	in := []int{0, 2, 1, 3}
	res, err := tsp.TwoOpt(d, in)
	require.NoError(t, err)
	assert.Equal(t, 40.0, res.Length)
	assert.Equal(t, 0, res.Order[0])
	assert.Equal(t, []int{0, 2, 1, 3}, in, "input must not change")
}

func TestTwoOpt_ConvexReachesOptimum(t *testing.T) {
	d, opt := circle(t, 12, 10)
	rng := rand.New(rand.NewSource(3))
	for r := 0; r < 5; r++ {
		order := rng.Perm(12)
		res, err := tsp.TwoOpt(d, order)
		require.NoError(t, err)
		assert.InDelta(t, opt, res.Length, 1e-6)
		assert.Equal(t, order[0], res.Order[0])
	}
}

func TestTwoOpt_NeverWorse(t *testing.T) {
	d := randomPoints(t, 9, 11)
	rng := rand.New(rand.NewSource(5))
	for r := 0; r < 10; r++ {
		order := rng.Perm(9)
		before, err := tsp.TwoOpt(d, order)
		require.NoError(t, err)

		exact, err := tsp.Exact(d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, before.Length, exact.Length-1e-9)

		again, err := tsp.TwoOpt(d, before.Order)
		require.NoError(t, err)
		assert.Equal(t, before, again, "a 2-opt optimum is a fixed point")
	}
}

func TestTwoOpt_Errors(t *testing.T) {
	d := points(t, 0, 0, 1, 0, 1, 1)
	_, err := tsp.TwoOpt(d, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrBadOrder)
	_, err = tsp.TwoOpt(d, []int{0, 1, 1})
	require.ErrorIs(t, err, tsp.ErrBadOrder)
	_, err = tsp.TwoOpt(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
