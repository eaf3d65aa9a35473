package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

const roundScale = 1e9

// round1e9 stabilizes accumulated sums.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// prefetch copies dist into a flat row-major buffer w[i*n+j] so the hot
// loops avoid interface calls. It rejects non-square matrices, negative or
// NaN entries and infinite entries.
//
// Complexity: O(n²).
func prefetch(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil || dist.Rows() == 0 || dist.Rows() != dist.Cols() {
		return nil, 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, 0, ErrDimensionMismatch
			}
			if math.IsNaN(x) || x < 0 {
				return nil, 0, ErrNegativeWeight
			}
			if math.IsInf(x, 1) {
				return nil, 0, fmt.Errorf("dist(%d,%d): %w", i, j, ErrInfiniteWeight)
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}

// cycleLength sums the closed cycle of order over w.
func cycleLength(w []float64, n int, order []int) float64 {
	var sum float64
	for i := range order {
		sum += w[order[i]*n+order[(i+1)%len(order)]]
	}

	return round1e9(sum)
}

// isPermutation reports whether order holds each of 0..n-1 exactly once.
func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
