package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/aoc2023/internal/config"
)

// ErrUnknownPuzzle is returned when a selection names a puzzle that is not
// both registered and declared in a manifest.
var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Module is the interface that every day package implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered solvers and manifest definitions for a
// single application instance.
type Registry struct {
	Solvers map[string]*Solver
	Puzzles map[string]*config.Puzzle
}

// Entry pairs a manifest puzzle with the solver that runs it.
type Entry struct {
	Puzzle *config.Puzzle
	Solver *Solver
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Solvers: make(map[string]*Solver),
		Puzzles: make(map[string]*config.Puzzle),
	}
}

// RegisterSolver adds s under its name. Registering a name twice is a
// programmer error and panics.
func (r *Registry) RegisterSolver(s *Solver) {
	if _, exists := r.Solvers[s.Name]; exists {
		panic(fmt.Sprintf("solver with name '%s' already registered", s.Name))
	}
	slog.Debug("Registering solver.", "name", s.Name)
	r.Solvers[s.Name] = s
}

// PopulateFromModel copies the loaded manifest definitions into the registry.
func (r *Registry) PopulateFromModel(model *config.Model) {
	for name, p := range model.Puzzles {
		r.Puzzles[name] = p
	}
}

// Names returns the puzzle names declared in manifests, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Puzzles))
	for name := range r.Puzzles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the entries for the given puzzle names in the given order.
// An empty selection means every declared puzzle, sorted by name.
func (r *Registry) Select(names ...string) ([]Entry, error) {
	if len(names) == 0 {
		names = r.Names()
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		p, ok := r.Puzzles[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no manifest", ErrUnknownPuzzle, name)
		}
		s, ok := r.Solvers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no solver", ErrUnknownPuzzle, name)
		}
		entries = append(entries, Entry{Puzzle: p, Solver: s})
	}
	return entries, nil
}
