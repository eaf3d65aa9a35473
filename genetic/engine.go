// Package genetic - Evolution Engine.
//
// State machine:
//
//	Initializing --NewEngine--> Evolving --Run--> Done
//
// The engine exclusively owns its Population, Breeder and RNG. Step builds
// generation g+1 into a fresh Population and commits it only when it holds
// exactly Size() tours, so no observer ever sees a half-built generation.
package genetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlath-ga/cities"
	"github.com/katalvlaran/lvlath-ga/matrix"
)

// ErrEngineDone is returned by Step after Run has finished.
var ErrEngineDone = errors.New("genetic: engine is done")

// State is the engine lifecycle phase.
type State int

const (
	// Initializing covers option validation and the initial population.
	Initializing State = iota
	// Evolving means generations may be stepped.
	Evolving
	// Done means Run has produced its Result.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Evolving:
		return "evolving"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Engine drives the generational search over one city table.
type Engine struct {
	table    *cities.Table
	dist     matrix.Matrix
	opts     Options
	rng      *rand.Rand
	selector Selector
	breeder  *Breeder
	reporter Reporter

	checkpoints map[int]struct{}
	pop         *Population
	generation  int
	state       State
	history     []Snapshot
	result      Result
}

// NewEngine validates opts, seeds the RNG and builds the initial population
// of opts.PopulationSize random tours.
//
// Errors: ErrEmptyPopulation (nil/empty table or zero size) and the option
// sentinels from Options.Validate.
//
// Complexity: O(n²) for the table's distances (already built) plus O(size·n).
func NewEngine(table *cities.Table, opts Options) (*Engine, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("city table: %w", ErrEmptyPopulation)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		table:    table,
		dist:     table.Distances(),
		opts:     opts,
		rng:      opts.Rand,
		selector: opts.Selector,
		reporter: opts.Reporter,
		state:    Initializing,
	}
	if e.rng == nil {
		e.rng = NewRand(opts.Seed)
	}
	if e.selector == nil {
		e.selector = RankPair{}
	}
	if e.reporter == nil {
		e.reporter = NopReporter{}
	}
	e.breeder = NewBreeder(opts.Crossover, opts.Mutator, e.dist, e.rng)

	e.checkpoints = make(map[int]struct{}, len(opts.Checkpoints)+1)
	for _, c := range opts.Checkpoints {
		e.checkpoints[c] = struct{}{}
	}
	if opts.Generations > 0 {
		e.checkpoints[opts.Generations] = struct{}{}
	}

	pop, err := NewRandomPopulation(opts.PopulationSize, table.Len(), e.dist, e.rng)
	if err != nil {
		return nil, err
	}
	e.pop = pop
	e.state = Evolving

	return e, nil
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Generation returns the number of committed generations.
func (e *Engine) Generation() int { return e.generation }

// Population returns the committed population. Callers must not modify it.
func (e *Engine) Population() *Population { return e.pop }

// Best returns the fittest tour of the committed population.
func (e *Engine) Best() *Tour { return e.pop.Fittest() }

// Step runs one selection+crossover+mutation+replacement pass and commits
// the next generation.
func (e *Engine) Step() error {
	if e.state == Done {
		return ErrEngineDone
	}
	next, err := e.selector.Reproduce(e.pop, e.breeder)
	if err != nil {
		return fmt.Errorf("generation %d: %w", e.generation+1, err)
	}
	if next == nil || next.Len() != e.pop.Size() {
		return fmt.Errorf("generation %d: %w", e.generation+1, ErrPopulationSize)
	}
	e.pop = next
	e.generation++

	return nil
}

// Run evolves until the generation budget is spent, reporting checkpoints
// on the way and the final Result at the end. ctx is checked once per
// generation boundary; on cancellation Run finishes with the last committed
// generation and returns ctx.Err() alongside the Result.
//
// Calling Run again after Done returns the stored Result.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.state == Done {
		return e.result, nil
	}

	for e.generation < e.opts.Generations {
		if err := ctx.Err(); err != nil {
			res, ferr := e.finish()
			if ferr != nil {
				return res, ferr
			}
			return res, err
		}
		if err := e.Step(); err != nil {
			return Result{}, err
		}
		if _, ok := e.checkpoints[e.generation]; ok {
			s := e.snapshot()
			e.history = append(e.history, s)
			e.reporter.Checkpoint(s)
		}
	}

	return e.finish()
}

// snapshot captures the committed generation.
func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Generation: e.generation,
		Stats:      e.pop.Stats(),
		Order:      e.pop.Fittest().Order(),
	}
}

// finish moves to Done, builds the Result and reports it. A best tour that
// does not map onto the table is a defect and surfaces as
// ErrInvalidPermutation; the engine then stays Evolving.
func (e *Engine) finish() (Result, error) {
	best := e.pop.Fittest()
	if !IsValidPermutation(best.order, e.table.Len()) {
		return Result{}, fmt.Errorf("best tour %v over %d cities: %w", best.order, e.table.Len(), ErrInvalidPermutation)
	}
	route, err := e.table.Route(best.order)
	if err != nil {
		return Result{}, fmt.Errorf("best tour: %v: %w", err, ErrInvalidPermutation)
	}

	e.result = Result{
		Order:       best.Order(),
		Route:       route,
		Length:      best.length,
		Generations: e.generation,
		Crossings:   e.breeder.Crossings(),
		Swaps:       e.breeder.Swaps(),
		History:     append([]Snapshot(nil), e.history...),
	}
	e.state = Done
	e.reporter.Final(e.result)

	return e.result, nil
}
