package genetic

import "errors"

// Sentinel errors. Wrapped errors keep these reachable through errors.Is.
var (
	// ErrInvalidPermutation marks an order that is not a permutation of 0..n-1.
	// Operators never produce one; seeing it from the engine is a defect.
	ErrInvalidPermutation = errors.New("genetic: order is not a permutation")

	// ErrEmptyPopulation is returned for a zero population size or an empty city table.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrBadMutationRate is returned when the mutation rate is outside [0,1] or NaN.
	ErrBadMutationRate = errors.New("genetic: mutation rate must be within [0,1]")

	// ErrBadGenerations is returned for a negative generation budget.
	ErrBadGenerations = errors.New("genetic: generations must be non-negative")

	// ErrBadCheckpoint is returned for a checkpoint generation < 1.
	ErrBadCheckpoint = errors.New("genetic: checkpoints must be positive")

	// ErrBadTournamentSize is returned for a tournament size < 1.
	ErrBadTournamentSize = errors.New("genetic: tournament size must be >= 1")

	// ErrUnknownStrategy is returned by the Parse* helpers for unknown names.
	ErrUnknownStrategy = errors.New("genetic: unknown strategy")

	// ErrPopulationFull is returned by Add when Len() == Size().
	ErrPopulationFull = errors.New("genetic: population is full")

	// ErrPopulationSize is returned when a replacement step does not yield
	// exactly Size() tours.
	ErrPopulationSize = errors.New("genetic: population size changed")

	// ErrNilDistances is returned when no distance matrix is supplied.
	ErrNilDistances = errors.New("genetic: nil distance matrix")
)
