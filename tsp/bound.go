package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// LowerBound returns the 1-tree bound of dist: a minimum spanning tree over
// cities 1..n-1 plus the two cheapest edges at city 0. Every closed tour is
// a 1-tree, so no tour is shorter. It works for any n, which makes it the
// fallback when Exact refuses an instance.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrInfiniteWeight.
//
// Complexity: O(n²) time (Prim on the dense matrix), O(n) extra space.
func LowerBound(dist matrix.Matrix) (float64, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return 0, err
	}
	switch n {
	case 1:
		return round1e9(w[0]), nil
	case 2:
		return round1e9(w[1] + w[2]), nil
	}

	// Two cheapest edges touching city 0.
	first, second := math.Inf(1), math.Inf(1)
	for v := 1; v < n; v++ {
		c := w[v]
		switch {
		case c < first:
			first, second = c, first
		case c < second:
			second = c
		}
	}

	lb := first + second + primWeight(w, n, 1)
	if math.IsInf(lb, 1) {
		return 0, fmt.Errorf("bound over %d cities overflows: %w", n, ErrInfiniteWeight)
	}

	return round1e9(lb), nil
}

// primWeight is the MST weight over cities from..n-1.
func primWeight(w []float64, n, from int) float64 {
	var (
		inTree = make([]bool, n)
		best   = make([]float64, n)
		total  float64
		u, v   int
		it     int
	)
	for v = from; v < n; v++ {
		best[v] = math.Inf(1)
	}
	best[from] = 0

	for it = from; it < n; it++ {
		u = -1
		for v = from; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v = from; v < n; v++ {
			if !inTree[v] && w[u*n+v] < best[v] {
				best[v] = w[u*n+v]
			}
		}
	}

	return total
}
