// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Euclidean builds the symmetric n×n matrix of straight-line distances between
// the points (xs[i], ys[i]). The diagonal is zero.
//
// Contract:
//   - len(xs) == len(ys) > 0, otherwise ErrDimensionMismatch / ErrInvalidDimensions.
//   - All coordinates finite, otherwise ErrNaNInf.
//   - Every distance finite, otherwise ErrNaNInf: finite coordinates far
//     apart (e.g. ±1e308) overflow math.Hypot to +Inf.
//
// Each unordered pair is computed once with math.Hypot and mirrored, so
// At(i, j) and At(j, i) are bit-identical.
//
// Complexity: O(n²) time and space.
func Euclidean(xs, ys []float64) (*Dense, error) {
	if len(xs) != len(ys) {
		return nil, ErrDimensionMismatch
	}
	n := len(xs)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i int
		j int
		d float64
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, ErrNaNInf
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			if math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, fmt.Errorf("distance (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}
