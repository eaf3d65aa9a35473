// Package genetic - selection & replacement policies.
//
// A Selector owns one complete replacement step: it reads the committed
// generation, breeds through the Breeder and returns a new, full Population.
// The current population is never modified.
package genetic

import (
	"container/heap"
	"fmt"
	"sort"
)

// Strategy names accepted by ParseSelector.
const (
	SelectRankPair   = "rank-pair"
	SelectTournament = "tournament"
)

// DefaultTournamentSize is the number of contestants drawn per tournament.
const DefaultTournamentSize = 2

// Selector builds generation g+1 from generation g.
type Selector interface {
	Name() string
	Reproduce(cur *Population, b *Breeder) (*Population, error)
}

// RankPair repeatedly removes the two shortest remaining tours, breeds them
// and carries parents and both children into the next generation (four
// entrants per pair). Pairing stops once the entrants can refill the
// population; the Size() shortest entrants are committed, equal lengths in
// entry order. A lone leftover tour is carried unchanged.
type RankPair struct{}

// Name implements Selector.
func (RankPair) Name() string { return SelectRankPair }

// Reproduce implements Selector.
//
// Complexity: O(size·(n + log size)).
func (RankPair) Reproduce(cur *Population, b *Breeder) (*Population, error) {
	size := cur.Size()
	h := make(tourHeap, 0, cur.Len())
	for i, t := range cur.members {
		h = append(h, heapEntry{tour: t, seq: i})
	}
	heap.Init(&h)

	entrants := make([]*Tour, 0, size+3)
	for len(entrants) < size {
		if h.Len() < 2 {
			for h.Len() > 0 && len(entrants) < size {
				entrants = append(entrants, heap.Pop(&h).(heapEntry).tour)
			}
			break
		}
		p1 := heap.Pop(&h).(heapEntry).tour
		p2 := heap.Pop(&h).(heapEntry).tour
		c1, c2, err := b.Breed(p1, p2)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, p1, p2, c1, c2)
	}
	if len(entrants) < size {
		return nil, fmt.Errorf("rank-pair produced %d of %d: %w", len(entrants), size, ErrPopulationSize)
	}

	sort.SliceStable(entrants, func(i, j int) bool { return entrants[i].length < entrants[j].length })
	next := &Population{members: entrants[:size:size], size: size}

	return next, nil
}

// Tournament is elitist replacement: the fittest tour of g is cloned into
// g+1 and the remaining Size()-1 slots are filled with children of
// tournament winners. Each tournament draws Size contestants uniformly with
// replacement; the shortest wins, the earliest drawn on ties.
type Tournament struct {
	Size int
}

// Name implements Selector.
func (Tournament) Name() string { return SelectTournament }

// Reproduce implements Selector.
//
// Complexity: O(size·(n + k)).
func (s Tournament) Reproduce(cur *Population, b *Breeder) (*Population, error) {
	if s.Size < 1 {
		return nil, ErrBadTournamentSize
	}
	if cur.Len() == 0 {
		return nil, ErrEmptyPopulation
	}
	next, err := NewPopulation(cur.Size())
	if err != nil {
		return nil, err
	}
	next.members = append(next.members, cur.Fittest().Clone())

	for !next.Full() {
		p1, p2 := s.pick(cur, b), s.pick(cur, b)
		c1, c2, err := b.Breed(p1, p2)
		if err != nil {
			return nil, err
		}
		next.members = append(next.members, c1)
		if !next.Full() {
			next.members = append(next.members, c2)
		}
	}

	return next, nil
}

// pick runs one tournament over cur.
func (s Tournament) pick(cur *Population, b *Breeder) *Tour {
	var (
		rng  = b.Rand()
		n    = len(cur.members)
		best = cur.members[rng.Intn(n)]
		c    *Tour
		i    int
	)
	for i = 1; i < s.Size; i++ {
		c = cur.members[rng.Intn(n)]
		if c.length < best.length {
			best = c
		}
	}

	return best
}

// ParseSelector maps a strategy name to its Selector.
func ParseSelector(name string, tournamentSize int) (Selector, error) {
	switch name {
	case SelectRankPair, "":
		return RankPair{}, nil
	case SelectTournament:
		if tournamentSize < 1 {
			return nil, ErrBadTournamentSize
		}
		return Tournament{Size: tournamentSize}, nil
	default:
		return nil, unknownStrategy("selector", name)
	}
}

// heapEntry pairs a tour with its position in the source population so that
// equal lengths pop in a deterministic order.
type heapEntry struct {
	tour *Tour
	seq  int
}

// tourHeap is a min-heap of heapEntry ordered by (length, seq).
type tourHeap []heapEntry

// Len returns the number of entries in the heap.
func (h tourHeap) Len() int { return len(h) }

// Less orders by ascending length, then by source position.
func (h tourHeap) Less(i, j int) bool {
	if h[i].tour.length != h[j].tour.length {
		return h[i].tour.length < h[j].tour.length
	}
	return h[i].seq < h[j].seq
}

// Swap exchanges two entries.
func (h tourHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; used by container/heap.
func (h *tourHeap) Push(x any) { *h = append(*h, x.(heapEntry)) }

// Pop removes the last entry; used by container/heap.
func (h *tourHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
