package genetic

// Snapshot is the progress record emitted at a checkpoint.
type Snapshot struct {
	Generation int
	Stats
	// Order is the visiting order of the fittest tour.
	Order []int
}

// Result is the outcome of a run.
type Result struct {
	// Order is the visiting order of the best tour of the last committed generation.
	Order []int
	// Route holds the city names of Order, cycle-closed (first name repeated last).
	Route []string
	// Length is the closed-cycle length of Order.
	Length float64
	// Generations is the number of completed generations.
	Generations int
	// Crossings is the number of parent pairs crossed during the run.
	Crossings int
	// Swaps is the number of effective mutation swaps during the run.
	Swaps int
	// History holds one Snapshot per reported checkpoint.
	History []Snapshot
}

// Reporter receives progress from an Engine. Calls happen on the engine's
// goroutine between generations; implementations that do slow work should
// hand it off rather than block.
type Reporter interface {
	Checkpoint(s Snapshot)
	Final(r Result)
}

// NopReporter discards everything.
type NopReporter struct{}

// Checkpoint implements Reporter.
func (NopReporter) Checkpoint(Snapshot) {}

// Final implements Reporter.
func (NopReporter) Final(Result) {}
