package cities

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-ga/matrix"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrInputFormat indicates mismatched or malformed city sources.
	ErrInputFormat = errors.New("cities: input format error")

	// ErrEmptyTable indicates that a table with zero cities was requested.
	ErrEmptyTable = errors.New("cities: table is empty")

	// ErrUnknownCity indicates an id outside 0..N-1.
	ErrUnknownCity = errors.New("cities: unknown city id")
)

// City is a labeled point. ID equals its index in the owning Table.
type City struct {
	ID   int
	Name string
	X    float64
	Y    float64
}

// Table is the immutable city lookup for one run.
type Table struct {
	cities []City
	dist   *matrix.Dense
}

// New builds a Table from cities whose IDs must be exactly 0..len-1 in order
// and whose coordinates must be finite.
//
// Errors: ErrEmptyTable, ErrInputFormat (wrapped with the offending index).
//
// Complexity: O(n²) for the distance matrix.
func New(cs []City) (*Table, error) {
	if len(cs) == 0 {
		return nil, ErrEmptyTable
	}

	var (
		xs = make([]float64, len(cs))
		ys = make([]float64, len(cs))
		i  int
		c  City
	)
	for i, c = range cs {
		if c.ID != i {
			return nil, fmt.Errorf("city %d: id %d out of sequence: %w", i, c.ID, ErrInputFormat)
		}
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("city %d: non-finite coordinate (%v, %v): %w", i, c.X, c.Y, ErrInputFormat)
		}
		xs[i], ys[i] = c.X, c.Y
	}

	dist, err := matrix.Euclidean(xs, ys)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, fmt.Errorf("cities: distance matrix: %w: %w", err, ErrInputFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("cities: distance matrix: %w", err)
	}

	return &Table{cities: append([]City(nil), cs...), dist: dist}, nil
}

// Len returns the number of cities.
func (t *Table) Len() int { return len(t.cities) }

// City returns the city with the given id.
func (t *Table) City(id int) (City, error) {
	if id < 0 || id >= len(t.cities) {
		return City{}, fmt.Errorf("id %d: %w", id, ErrUnknownCity)
	}

	return t.cities[id], nil
}

// Name returns the display name of id, or "" for an unknown id.
func (t *Table) Name(id int) string {
	if id < 0 || id >= len(t.cities) {
		return ""
	}

	return t.cities[id].Name
}

// Cities returns a copy of all cities in id order.
func (t *Table) Cities() []City {
	return append([]City(nil), t.cities...)
}

// Distances returns the shared Euclidean distance matrix. Callers must treat
// it as read-only.
func (t *Table) Distances() *matrix.Dense { return t.dist }

// Route maps a visiting order to city names and closes the cycle by
// repeating the first name at the end. An empty order yields an empty route.
//
// Complexity: O(len(order)).
func (t *Table) Route(order []int) ([]string, error) {
	if len(order) == 0 {
		return []string{}, nil
	}
	names := make([]string, 0, len(order)+1)
	for _, id := range order {
		if id < 0 || id >= len(t.cities) {
			return nil, fmt.Errorf("id %d: %w", id, ErrUnknownCity)
		}
		names = append(names, t.cities[id].Name)
	}

	return append(names, names[0]), nil
}

// Bounds returns the bounding box of all cities.
func (t *Table) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range t.cities {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	return minX, minY, maxX, maxY
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
