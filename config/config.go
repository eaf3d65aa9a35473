// Package config reads run parameters from YAML or TOML files and turns
// them into genetic.Options. Missing keys keep their defaults; unknown keys
// are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-ga/genetic"
)

// Supported formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrUnknownKey is returned when a file sets a key Run does not have.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Run holds every tunable of a search.
type Run struct {
	PopulationSize int     `yaml:"population_size" toml:"population_size"`
	Generations    int     `yaml:"generations" toml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate" toml:"mutation_rate"`
	Checkpoints    []int   `yaml:"checkpoints" toml:"checkpoints"`
	Seed           int64   `yaml:"seed" toml:"seed"`

	Selection      string `yaml:"selection" toml:"selection"`
	TournamentSize int    `yaml:"tournament_size" toml:"tournament_size"`
	Crossover      string `yaml:"crossover" toml:"crossover"`
	Mutation       string `yaml:"mutation" toml:"mutation"`
}

// Default mirrors genetic.DefaultOptions.
func Default() Run {
	return Run{
		PopulationSize: genetic.DefaultPopulationSize,
		Generations:    genetic.DefaultGenerations,
		MutationRate:   genetic.DefaultMutationRate,
		Checkpoints:    append([]int(nil), genetic.DefaultCheckpoints...),
		Selection:      genetic.SelectRankPair,
		TournamentSize: genetic.DefaultTournamentSize,
		Crossover:      genetic.CrossOnePoint,
		Mutation:       genetic.MutateSwap,
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads path on top of Default.
func Load(path string) (Run, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Run{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	run, err := Decode(f, format)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}

	return run, nil
}

// Decode reads one document in the given format on top of Default. An
// empty document yields Default.
func Decode(r io.Reader, format string) (Run, error) {
	run := Default()
	switch format {
	case FormatYAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		if err := d.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
			if strings.Contains(err.Error(), "not found in type") {
				return Run{}, fmt.Errorf("%v: %w", err, ErrUnknownKey)
			}
			return Run{}, fmt.Errorf("config: yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&run)
		if err != nil {
			return Run{}, fmt.Errorf("config: toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return Run{}, fmt.Errorf("%v: %w", keys, ErrUnknownKey)
		}
	default:
		return Run{}, fmt.Errorf("format %q: %w", format, ErrUnsupportedFormat)
	}

	return run, nil
}

// Options converts r into validated genetic.Options.
func (r Run) Options() (genetic.Options, error) {
	sel, err := genetic.ParseSelector(r.Selection, r.TournamentSize)
	if err != nil {
		return genetic.Options{}, err
	}
	cross, err := genetic.ParseCrossover(r.Crossover)
	if err != nil {
		return genetic.Options{}, err
	}
	mut, err := genetic.ParseMutator(r.Mutation, r.MutationRate)
	if err != nil {
		return genetic.Options{}, err
	}

	opts := genetic.Options{
		PopulationSize: r.PopulationSize,
		Generations:    r.Generations,
		MutationRate:   r.MutationRate,
		Checkpoints:    append([]int(nil), r.Checkpoints...),
		Seed:           r.Seed,
		Selector:       sel,
		Crossover:      cross,
		Mutator:        mut,
	}
	if err := opts.Validate(); err != nil {
		return genetic.Options{}, err
	}

	return opts, nil
}
