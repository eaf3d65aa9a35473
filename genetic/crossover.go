// Package genetic - order-preserving crossover.
//
// Both operators keep one contiguous block of parent A verbatim and fill the
// remaining positions with parent B's cities in the order B visits them,
// skipping cities already placed. The id-indexed seen set makes the fill O(n)
// and guarantees every child is a permutation without an after-the-fact check.
// The second child swaps the parents' roles and reuses the same boundaries.
package genetic

import "math/rand"

// Strategy names accepted by ParseCrossover.
const (
	CrossOnePoint = "one-point"
	CrossSegment  = "segment"
)

// Crossover combines two equal-length parent orders into two child orders.
// Implementations must return fresh slices and must not modify a or b.
type Crossover interface {
	Name() string
	Cross(a, b []int, rng *rand.Rand) (c1, c2 []int)
}

// OnePoint keeps the prefix a[0..k] for one random cut k ∈ [0,n) and fills
// the suffix from b. This is the default crossover.
type OnePoint struct{}

// Name implements Crossover.
func (OnePoint) Name() string { return CrossOnePoint }

// Cross implements Crossover.
//
// Complexity: O(n).
func (OnePoint) Cross(a, b []int, rng *rand.Rand) ([]int, []int) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	k := rng.Intn(n)

	return onePointChild(a, b, k), onePointChild(b, a, k)
}

// onePointChild copies keep[0..k] and appends the cities of fill not yet
// present, in fill's order.
func onePointChild(keep, fill []int, k int) []int {
	n := len(keep)
	child := make([]int, 0, n)
	seen := make([]bool, n)

	var i int
	for i = 0; i <= k; i++ {
		child = append(child, keep[i])
		seen[keep[i]] = true
	}
	for _, c := range fill {
		if !seen[c] {
			child = append(child, c)
			seen[c] = true
		}
	}

	return child
}

// Segment keeps the inner block a[start..end] (start <= end, both uniform in
// [0,n)) in place. Remaining positions are filled cyclically from end+1 with
// b's cities, scanning b cyclically from end+1 as well.
type Segment struct{}

// Name implements Crossover.
func (Segment) Name() string { return CrossSegment }

// Cross implements Crossover.
//
// Complexity: O(n).
func (Segment) Cross(a, b []int, rng *rand.Rand) ([]int, []int) {
	n := len(a)
	if n == 0 {
		return nil, nil
	}
	start, end := rng.Intn(n), rng.Intn(n)
	if start > end {
		start, end = end, start
	}

	return segmentChild(a, b, start, end), segmentChild(b, a, start, end)
}

// segmentChild copies keep[start..end] into the same positions and fills the
// rest, wrapping around, in the cyclic order of fill starting after end.
func segmentChild(keep, fill []int, start, end int) []int {
	n := len(keep)
	child := make([]int, n)
	seen := make([]bool, n)

	var (
		i   int
		c   int
		pos = (end + 1) % n
	)
	for i = start; i <= end; i++ {
		child[i] = keep[i]
		seen[keep[i]] = true
	}
	for i = 0; i < n; i++ {
		c = fill[(end+1+i)%n]
		if seen[c] {
			continue
		}
		child[pos] = c
		seen[c] = true
		pos = (pos + 1) % n
	}

	return child
}

// ParseCrossover maps a strategy name to its Crossover.
func ParseCrossover(name string) (Crossover, error) {
	switch name {
	case CrossOnePoint, "":
		return OnePoint{}, nil
	case CrossSegment:
		return Segment{}, nil
	default:
		return nil, unknownStrategy("crossover", name)
	}
}
