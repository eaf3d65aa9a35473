// Package lvlath is the root of lvlath-ga: a genetic search for short
// closed tours through a set of cities.
//
// Everything is organized under a few subpackages:
//
//	matrix/   dense distance matrices with checked access
//	cities/   city tables: CSV loading, random generation, distances
//	genetic/  tours, populations, crossover, mutation, selection and the engine
//	tsp/      reference solvers: Held–Karp, 2-opt, 1-tree lower bound
//	report/   zap progress logging and plain-text summaries
//	render/   terminal drawing of tours with tcell
//	config/   YAML/TOML run files
//	cmd/gatsp the command-line driver
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	D───C
//
// Four cities on a 10×10 square: the best closed tour A→B→C→D→A has
// length 40, and the search finds it within a few generations.
//
//	go run ./cmd/gatsp -generations 50 data/square
package lvlath
