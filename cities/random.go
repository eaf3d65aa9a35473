package cities

import (
	"math/rand"
	"strconv"
)

// DefaultSide is the edge of the square used by Random when side <= 0.
const DefaultSide = 10.0

// Random builds n cities named City1..CityN placed uniformly in [0,side)².
// rng must be non-nil; pass a seeded source for reproducible tables.
//
// Errors: ErrEmptyTable for n <= 0.
//
// Complexity: O(n²) (distance matrix).
func Random(n int, rng *rand.Rand, side float64) (*Table, error) {
	if n <= 0 {
		return nil, ErrEmptyTable
	}
	if side <= 0 {
		side = DefaultSide
	}

	cs := make([]City, n)
	for i := range cs {
		cs[i] = City{
			ID:   i,
			Name: "City" + strconv.Itoa(i+1),
			X:    rng.Float64() * side,
			Y:    rng.Float64() * side,
		}
	}

	return New(cs)
}
