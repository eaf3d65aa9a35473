// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	v, _ := m.At(0, 1)
	assert.Equal(t, 3.0, v)
	v, _ = cp.At(0, 1)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, "[0, 3]\n[0, 0]\n", m.String())
}

func TestDense_NilReceiver(t *testing.T) {
	var m *matrix.Dense
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEuclidean_Square(t *testing.T) {
	m, err := matrix.Euclidean([]float64{0, 10, 10, 0}, []float64{0, 0, 10, 10})
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	var (
		i, j int
		a, b float64
	)
	for i = 0; i < 4; i++ {
		d, _ := m.At(i, i)
		assert.Zero(t, d)
		for j = 0; j < 4; j++ {
			a, _ = m.At(i, j)
			b, _ = m.At(j, i)
			assert.Equal(t, a, b, "asymmetry at (%d,%d)", i, j)
		}
	}
	d, _ := m.At(0, 1)
	assert.Equal(t, 10.0, d)
	d, _ = m.At(0, 2)
	assert.InDelta(t, math.Sqrt(200), d, 1e-12)
}

func TestEuclidean_BadInput(t *testing.T) {
	_, err := matrix.Euclidean([]float64{0, 1}, []float64{0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Euclidean(nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Euclidean([]float64{0, math.Inf(1)}, []float64{0, 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEuclidean_OverflowingDistance(t *testing.T) {
	// Both points are finite, but their distance is not.
	_, err := matrix.Euclidean([]float64{1e308, -1e308, 0}, []float64{1e308, -1e308, 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	d, err := matrix.Euclidean([]float64{1e307, -1e307}, []float64{0, 0})
	require.NoError(t, err)
	v, err := d.At(0, 1)
	require.NoError(t, err)
	require.False(t, math.IsInf(v, 0))
}
