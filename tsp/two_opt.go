// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// for a=T[i−1], b=T[i], c=T[k], d=T[k+1] the move reverses T[i..k] when
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) < −eps.
//
// The scan restarts after every accepted move. The first city never moves.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// twoOptEps is the minimum gain for a move to count as an improvement.
const twoOptEps = 1e-12

// TwoOpt improves order until no 2-opt move shortens the cycle. The input
// is not modified. A distance matrix is assumed symmetric.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrInfiniteWeight,
// ErrBadOrder.
//
// Complexity: O(iter·n²) time, O(n) extra space.
func TwoOpt(dist matrix.Matrix, order []int) (Result, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return Result{}, err
	}
	if !isPermutation(order, n) {
		return Result{}, fmt.Errorf("%v over %d cities: %w", order, n, ErrBadOrder)
	}

	// Closed working copy: cur[n] == cur[0].
	cur := make([]int, n+1)
	copy(cur, order)
	cur[n] = cur[0]

	at := func(u, v int) float64 { return w[u*n+v] }

	for {
		improved := false

		var (
			a, b, c, d int
			delta      float64
			i, k       int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -twoOptEps {
					continue
				}
				reverse(cur, i, k)
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}

	out := cur[:n:n]

	return Result{Order: out, Length: cycleLength(w, n, out)}, nil
}

// reverse flips s[i..k] in place.
func reverse(s []int, i, k int) {
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}
