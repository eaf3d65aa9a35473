// Package genetic_test shares small fixtures across the black-box tests.
package genetic_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ga/cities"
	"github.com/katalvlaran/lvlath-ga/genetic"
)

const (
	// epsLen tolerates the 1e-9 rounding applied to every tour length.
	epsLen = 1e-6

	// seedDet is the fixed seed used by deterministic tests.
	seedDet = int64(42)
)

// squareTable returns the unit-test square (0,0),(10,0),(10,10),(0,10).
func squareTable(t testing.TB) *cities.Table {
	t.Helper()
	tbl, err := cities.Load(
		strings.NewReader("0,0\n10,0\n10,10\n0,10\n"),
		strings.NewReader("A\nB\nC\nD\n"),
	)
	require.NoError(t, err)

	return tbl
}

// randomTable returns n seeded random cities in [0,100)².
func randomTable(t testing.TB, n int, seed int64) *cities.Table {
	t.Helper()
	tbl, err := cities.Random(n, rand.New(rand.NewSource(seed)), 100)
	require.NoError(t, err)

	return tbl
}

// circleTable places n cities on a circle of radius r; the optimal tour is
// the polygon perimeter.
func circleTable(t testing.TB, n int, r float64) (*cities.Table, float64) {
	t.Helper()
	cs := make([]cities.City, n)
	for i := range cs {
		th := 2 * math.Pi * float64(i) / float64(n)
		cs[i] = cities.City{ID: i, Name: string(rune('a' + i)), X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	tbl, err := cities.New(cs)
	require.NoError(t, err)

	return tbl, float64(n) * 2 * r * math.Sin(math.Pi/float64(n))
}

// mustTour builds a tour or fails the test.
func mustTour(t testing.TB, tbl *cities.Table, order ...int) *genetic.Tour {
	t.Helper()
	tour, err := genetic.NewTour(order, tbl.Distances())
	require.NoError(t, err)

	return tour
}

// requireSound checks the permutation invariant and that the cached length
// is fresh for every member.
func requireSound(t testing.TB, tbl *cities.Table, p *genetic.Population) {
	t.Helper()
	for i := 0; i < p.Len(); i++ {
		tour := p.At(i)
		require.True(t, genetic.IsValidPermutation(tour.Order(), tbl.Len()), "member %d: %v", i, tour.Order())
		l, err := genetic.LengthOf(tour.Order(), tbl.Distances())
		require.NoError(t, err)
		require.Equal(t, l, tour.Length(), "member %d has a stale length", i)
	}
}

// recorder is a Reporter that keeps everything it receives.
type recorder struct {
	checkpoints  []genetic.Snapshot
	finals       []genetic.Result
	onCheckpoint func(genetic.Snapshot)
}

func (r *recorder) Checkpoint(s genetic.Snapshot) {
	r.checkpoints = append(r.checkpoints, s)
	if r.onCheckpoint != nil {
		r.onCheckpoint(s)
	}
}

func (r *recorder) Final(res genetic.Result) { r.finals = append(r.finals, res) }

func (r *recorder) generations() []int {
	out := make([]int, len(r.checkpoints))
	for i, s := range r.checkpoints {
		out[i] = s.Generation
	}
	return out
}
