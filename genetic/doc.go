// Package genetic implements the evolutionary tour search.
//
// A Tour is a permutation of city ids 0..n-1 read as a closed cycle; its
// cached length always includes the closing edge from the last city back to
// the first. Path-only costing is deliberately not offered: it changes the
// ranking of tours and the reported numbers.
//
// One generation step:
//
//	Population(g) --Selector--> parents --Crossover--> children
//	              --Mutator--> children (length refreshed) --> Population(g+1)
//
// Selection is a strategy object chosen at configuration time:
//
//   - RankPair   – pops the two shortest tours from a min-heap, breeds two
//     children, and carries parents and children into the next generation
//     until it is full.
//   - Tournament – elitist; the best tour survives unchanged and the rest are
//     bred from winners of k-way tournaments drawn with replacement.
//
// Crossover (OnePoint by default, Segment as an alternative) keeps a block of
// parent A and fills the rest in parent B's order, skipping cities already
// placed; membership uses an id-indexed set, so every child is a valid
// permutation by construction. Mutation is SingleSwap by default or
// PerPosition with a per-gene rate.
//
// Engine drives Initializing -> Evolving -> Done on a single goroutine with a
// single seeded *rand.Rand, so equal Options give equal results. A
// context.Context is consulted once per generation boundary only; a partially
// built generation is never exposed.
//
// Errors (sentinel):
//
//	ErrInvalidPermutation – an order is not a permutation of 0..n-1.
//	ErrEmptyPopulation    – population size or city count is zero.
//	ErrBadMutationRate    – mutation rate outside [0,1].
//	ErrBadGenerations     – negative generation budget.
//	ErrBadCheckpoint      – non-positive checkpoint.
//	ErrBadTournamentSize  – tournament size < 1.
//	ErrUnknownStrategy    – unknown selector/crossover/mutator name.
//	ErrPopulationFull     – Add on a full population.
//	ErrPopulationSize     – a selector produced the wrong number of tours.
package genetic
