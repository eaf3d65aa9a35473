package report

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-ga/cities"
	"github.com/katalvlaran/lvlath-ga/genetic"
)

// Logger logs checkpoints at Info and the final result at Info.
type Logger struct {
	log       *zap.Logger
	table     *cities.Table
	withRoute bool
}

// NewLogger returns a Logger. With withRoute set, every checkpoint also
// carries the city names of its best tour; the table is needed for that
// and may be nil otherwise. A nil logger discards everything.
func NewLogger(l *zap.Logger, table *cities.Table, withRoute bool) *Logger {
	if l == nil {
		l = zap.NewNop()
	}

	return &Logger{log: l, table: table, withRoute: withRoute}
}

// Checkpoint implements genetic.Reporter.
func (r *Logger) Checkpoint(s genetic.Snapshot) {
	fields := []zap.Field{
		zap.Int("generation", s.Generation),
		zap.Float64("best", s.Best),
		zap.Float64("mean", s.Mean),
		zap.Float64("worst", s.Worst),
		zap.Float64("stddev", s.StdDev),
	}
	if r.withRoute && r.table != nil {
		if route, err := r.table.Route(s.Order); err == nil {
			fields = append(fields, zap.Strings("route", route))
		}
	}
	r.log.Info("checkpoint", fields...)
}

// Final implements genetic.Reporter.
func (r *Logger) Final(res genetic.Result) {
	r.log.Info("search finished",
		zap.Int("generations", res.Generations),
		zap.Int("crossings", res.Crossings),
		zap.Int("swaps", res.Swaps),
		zap.Float64("length", res.Length),
		zap.Strings("route", res.Route),
	)
}

// Multi forwards every call to each reporter in order.
type Multi []genetic.Reporter

// Checkpoint implements genetic.Reporter.
func (m Multi) Checkpoint(s genetic.Snapshot) {
	for _, r := range m {
		r.Checkpoint(s)
	}
}

// Final implements genetic.Reporter.
func (m Multi) Final(res genetic.Result) {
	for _, r := range m {
		r.Final(res)
	}
}
