// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance storage used by the tour search.
//
// The package exposes a minimal Matrix interface (Rows, Cols, At, Set, Clone)
// and a row-major Dense implementation with bounds-checked accessors that
// return sentinel errors instead of panicking.
//
// Euclidean builds the symmetric, zero-diagonal n×n distance matrix for a set
// of planar points. Tour evaluation reads it through the Matrix interface, so
// any other metric can be plugged in by implementing Matrix.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Euclidean: O(n²).
package matrix
