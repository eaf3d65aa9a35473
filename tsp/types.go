package tsp

import "errors"

// MaxExact is the largest instance Exact accepts.
const MaxExact = 16

var (
	// ErrTooLarge is returned by Exact when n exceeds MaxExact.
	ErrTooLarge = errors.New("tsp: instance too large for exact search")

	// ErrDimensionMismatch indicates a non-square or empty matrix, or an
	// order whose length does not match it.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight indicates a negative or NaN distance.
	ErrNegativeWeight = errors.New("tsp: negative or NaN distance")

	// ErrInfiniteWeight indicates a +Inf distance, or a tour whose length
	// overflows float64.
	ErrInfiniteWeight = errors.New("tsp: infinite distance")

	// ErrBadOrder indicates an order that is not a permutation of 0..n-1.
	ErrBadOrder = errors.New("tsp: order is not a permutation")
)

// Result is the outcome of a solver.
type Result struct {
	// Order visits every city once, starting at 0. The cycle closes back to
	// Order[0] implicitly.
	Order []int

	// Length is the closed-cycle length, rounded to 1e-9.
	Length float64
}
