// Package genetic - Tour: a permutation of city ids with its cached cycle length.
//
// Invariants:
//   - order is a permutation of {0..n-1}: no repeats, no omissions.
//   - length == LengthOf(order, dist) at all times; every method that changes
//     order refreshes length before returning.
package genetic

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Tour is one candidate solution. The zero value is not usable; build tours
// with NewTour or NewRandomTour.
type Tour struct {
	order  []int
	length float64
}

// NewTour validates order, copies it and computes its cycle length.
//
// Errors: ErrInvalidPermutation, ErrNilDistances, matrix lookup errors.
//
// Complexity: O(n).
func NewTour(order []int, dist matrix.Matrix) (*Tour, error) {
	if dist == nil {
		return nil, ErrNilDistances
	}
	if !IsValidPermutation(order, dist.Rows()) {
		return nil, fmt.Errorf("order %v over %d cities: %w", order, dist.Rows(), ErrInvalidPermutation)
	}

	return newTourOwned(append([]int(nil), order...), dist)
}

// NewRandomTour returns a uniformly shuffled permutation of 0..n-1 with its
// length computed immediately.
//
// Complexity: O(n).
func NewRandomTour(n int, dist matrix.Matrix, rng *rand.Rand) (*Tour, error) {
	if n <= 0 {
		return nil, ErrEmptyPopulation
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	shuffleIntsInPlace(order, rng)

	return NewTour(order, dist)
}

// newTourOwned takes ownership of order without validating it. Operators use
// it for children that are permutations by construction.
func newTourOwned(order []int, dist matrix.Matrix) (*Tour, error) {
	l, err := LengthOf(order, dist)
	if err != nil {
		return nil, err
	}

	return &Tour{order: order, length: l}, nil
}

// LengthOf returns the closed-cycle length of order: the sum of
// dist(order[i], order[i+1]) plus the closing edge dist(order[n-1], order[0]).
// The result is rounded to 1e-9 and is bit-identical across repeated calls.
//
// Errors: ErrInvalidPermutation for an empty order, ErrNilDistances,
// wrapped matrix errors for ids outside the matrix.
//
// Complexity: O(n).
func LengthOf(order []int, dist matrix.Matrix) (float64, error) {
	if dist == nil {
		return 0, ErrNilDistances
	}
	n := len(order)
	if n == 0 {
		return 0, ErrInvalidPermutation
	}

	var (
		sum float64
		w   float64
		err error
		i   int
		u   int
		v   int
	)
	for i = 0; i < n; i++ {
		u = order[i]
		v = order[(i+1)%n]
		w, err = dist.At(u, v)
		if err != nil {
			return 0, fmt.Errorf("genetic: edge %d->%d: %w", u, v, err)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// IsValidPermutation reports whether order holds exactly n elements with each
// of 0..n-1 appearing once.
//
// Complexity: O(n) time, O(n) space.
func IsValidPermutation(order []int, n int) bool {
	if n <= 0 || len(order) != n {
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

// Order returns a copy of the visiting order.
func (t *Tour) Order() []int { return append([]int(nil), t.order...) }

// Length returns the cached cycle length.
func (t *Tour) Length() float64 { return t.length }

// Len returns the number of cities in the tour.
func (t *Tour) Len() int { return len(t.order) }

// Clone returns an independent copy.
func (t *Tour) Clone() *Tour {
	return &Tour{order: append([]int(nil), t.order...), length: t.length}
}

// Swap exchanges the cities at positions i and j and refreshes the length.
// i == j is a no-op and leaves the length untouched.
//
// Complexity: O(n).
func (t *Tour) Swap(i, j int, dist matrix.Matrix) error {
	n := len(t.order)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("swap (%d,%d) in tour of %d: %w", i, j, n, matrix.ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	t.order[i], t.order[j] = t.order[j], t.order[i]
	l, err := LengthOf(t.order, dist)
	if err != nil {
		t.order[i], t.order[j] = t.order[j], t.order[i]
		return err
	}
	t.length = l

	return nil
}

// String renders "0 -> 3 -> 1 -> 2 -> 0 (len=12.5)".
func (t *Tour) String() string {
	if len(t.order) == 0 {
		return "<empty>"
	}
	var sb strings.Builder
	for _, v := range t.order {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" -> ")
	}
	sb.WriteString(strconv.Itoa(t.order[0]))
	fmt.Fprintf(&sb, " (len=%g)", t.length)

	return sb.String()
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
