package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// Exact returns an optimal closed tour over dist using Held–Karp.
//
// dp[mask*n+j] is the cheapest path that starts at 0, visits exactly the
// cities in mask (bit 0 always set) and ends at j. The tour is closed by
// the cheapest return edge j→0 and rebuilt from the parent table.
//
// Errors: ErrTooLarge (n > MaxExact), ErrDimensionMismatch, ErrNegativeWeight,
// ErrInfiniteWeight (an infinite entry, or every tour overflows).
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Exact(dist matrix.Matrix) (Result, error) {
	if dist != nil && dist.Rows() > MaxExact {
		return Result{}, fmt.Errorf("%d cities (max %d): %w", dist.Rows(), MaxExact, ErrTooLarge)
	}
	w, n, err := prefetch(dist)
	if err != nil {
		return Result{}, err
	}
	if n == 1 {
		return Result{Order: []int{0}, Length: round1e9(w[0])}, nil
	}

	var (
		full   = 1<<n - 1
		dp     = make([]float64, (full+1)*n)
		parent = make([]int, (full+1)*n)
		mask   int
		j, k   int
		prev   int
		cand   float64
	)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	for mask = 1; mask <= full; mask += 2 { // odd masks contain city 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + w[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j = 1; j < n; j++ {
		cand = dp[full*n+j] + w[j*n+0]
		if cand < best {
			best, last = cand, j
		}
	}

	if last < 0 {
		return Result{}, fmt.Errorf("no finite tour over %d cities: %w", n, ErrInfiniteWeight)
	}

	order := make([]int, n)
	mask, j = full, last
	for i := n - 1; i >= 1; i-- {
		order[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}

	return Result{Order: order, Length: cycleLength(w, n, order)}, nil
}
