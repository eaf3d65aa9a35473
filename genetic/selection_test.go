package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-ga/genetic"
)

func TestRankPair_PreservesSize(t *testing.T) {
	tbl := randomTable(t, 15, seedDet)
	for size := 1; size <= 11; size++ {
		rng := genetic.NewRand(int64(size))
		cur, err := genetic.NewRandomPopulation(size, tbl.Len(), tbl.Distances(), rng)
		require.NoError(t, err)
		before := cur.Members()
		br := genetic.NewBreeder(nil, nil, tbl.Distances(), rng)

		next, err := genetic.RankPair{}.Reproduce(cur, br)
		require.NoError(t, err)
		require.Equal(t, size, next.Len(), "size %d", size)
		require.Equal(t, size, next.Size())
		requireSound(t, tbl, next)

		// The current generation is left untouched.
		require.Equal(t, before, cur.Members())

		// The two shortest tours are always entrants, so the best never regresses.
		assert.LessOrEqual(t, next.Fittest().Length(), cur.Fittest().Length())

		// Four entrants per pair: pairing stops after ceil(size/4) pairs.
		wantPairs := (size + 3) / 4
		if size == 1 {
			wantPairs = 0
		}
		assert.Equal(t, wantPairs, br.Crossings(), "size %d", size)
	}
}

func TestRankPair_SingleMemberCarried(t *testing.T) {
	tbl := randomTable(t, 6, seedDet)
	cur, err := genetic.NewRandomPopulation(1, tbl.Len(), tbl.Distances(), genetic.NewRand(seedDet))
	require.NoError(t, err)

	next, err := genetic.RankPair{}.Reproduce(cur, genetic.NewBreeder(nil, nil, tbl.Distances(), nil))
	require.NoError(t, err)
	require.Equal(t, 1, next.Len())
	assert.Same(t, cur.At(0), next.At(0))
}

func TestRankPair_ShortPopulation(t *testing.T) {
	tbl := squareTable(t)
	cur, err := genetic.NewPopulation(3)
	require.NoError(t, err)
	require.NoError(t, cur.Add(mustTour(t, tbl, 0, 1, 2, 3)))

	_, err = genetic.RankPair{}.Reproduce(cur, genetic.NewBreeder(nil, nil, tbl.Distances(), nil))
	require.ErrorIs(t, err, genetic.ErrPopulationSize)
}

func TestTournament_ElitismAndSize(t *testing.T) {
	tbl := randomTable(t, 15, seedDet)
	for _, k := range []int{1, 2, 5} {
		for size := 1; size <= 9; size++ {
			rng := genetic.NewRand(int64(size * k))
			cur, err := genetic.NewRandomPopulation(size, tbl.Len(), tbl.Distances(), rng)
			require.NoError(t, err)

			next, err := genetic.Tournament{Size: k}.Reproduce(cur, genetic.NewBreeder(nil, nil, tbl.Distances(), rng))
			require.NoError(t, err)
			require.Equal(t, size, next.Len())
			requireSound(t, tbl, next)

			// The elite is an unchanged copy of the current fittest.
			elite := next.At(0)
			assert.NotSame(t, cur.Fittest(), elite)
			assert.Equal(t, cur.Fittest().Order(), elite.Order())
			assert.Equal(t, cur.Fittest().Length(), elite.Length())
			assert.LessOrEqual(t, next.Fittest().Length(), cur.Fittest().Length())
		}
	}
}

func TestTournament_Errors(t *testing.T) {
	tbl := squareTable(t)
	br := genetic.NewBreeder(nil, nil, tbl.Distances(), nil)

	cur, err := genetic.NewPopulation(2)
	require.NoError(t, err)
	_, err = genetic.Tournament{Size: 2}.Reproduce(cur, br)
	require.ErrorIs(t, err, genetic.ErrEmptyPopulation)

	require.NoError(t, cur.Add(mustTour(t, tbl, 0, 1, 2, 3)))
	_, err = genetic.Tournament{}.Reproduce(cur, br)
	require.ErrorIs(t, err, genetic.ErrBadTournamentSize)
}

func TestParseSelector(t *testing.T) {
	s, err := genetic.ParseSelector(genetic.SelectRankPair, 0)
	require.NoError(t, err)
	assert.Equal(t, genetic.RankPair{}, s)

	s, err = genetic.ParseSelector("", 0)
	require.NoError(t, err)
	assert.Equal(t, genetic.SelectRankPair, s.Name())

	s, err = genetic.ParseSelector(genetic.SelectTournament, 3)
	require.NoError(t, err)
	assert.Equal(t, genetic.Tournament{Size: 3}, s)

	_, err = genetic.ParseSelector(genetic.SelectTournament, 0)
	require.ErrorIs(t, err, genetic.ErrBadTournamentSize)

	_, err = genetic.ParseSelector("roulette", 2)
	require.ErrorIs(t, err, genetic.ErrUnknownStrategy)
}

func TestBreeder_ChildrenHaveFreshLengths(t *testing.T) {
	tbl := randomTable(t, 20, seedDet)
	rng := genetic.NewRand(seedDet)
	br := genetic.NewBreeder(genetic.Segment{}, genetic.PerPosition{Rate: 0.2}, tbl.Distances(), rng)
	assert.Same(t, rng, br.Rand())

	p1, err := genetic.NewRandomTour(tbl.Len(), tbl.Distances(), rng)
	require.NoError(t, err)
	p2, err := genetic.NewRandomTour(tbl.Len(), tbl.Distances(), rng)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		c1, c2, err := br.Breed(p1, p2)
		require.NoError(t, err)
		for _, c := range []*genetic.Tour{c1, c2} {
			require.True(t, genetic.IsValidPermutation(c.Order(), tbl.Len()))
			l, err := genetic.LengthOf(c.Order(), tbl.Distances())
			require.NoError(t, err)
			require.Equal(t, l, c.Length())
		}
	}
	assert.Equal(t, 100, br.Crossings())
}
