package registry

import (
	"fmt"
	"io"
)

// NoOptions is the options type of solvers that take no configuration.
type NoOptions struct{}

// Solver holds the compiled Go parts of one puzzle, with its input and
// options types erased so the executor can drive every day the same way.
type Solver struct {
	Name string

	// NewOptions returns a pointer to a fresh options struct holding the
	// solver's defaults, ready to be overlaid by a manifest options block.
	NewOptions func() any

	Parse func(r io.Reader) (any, error)
	parts [2]func(input, opts any) (int, error)
}

// NewSolver adapts a day without options.
func NewSolver[I any](name string, parse func(io.Reader) (I, error), part1, part2 func(I) (int, error)) *Solver {
	return NewSolverWithOptions(name, parse,
		func() NoOptions { return NoOptions{} },
		func(in I, _ NoOptions) (int, error) { return part1(in) },
		func(in I, _ NoOptions) (int, error) { return part2(in) },
	)
}

// NewSolverWithOptions adapts a day whose parts read an options struct O.
// defaults supplies the values used when a run has no options block.
func NewSolverWithOptions[I, O any](name string, parse func(io.Reader) (I, error), defaults func() O, part1, part2 func(I, O) (int, error)) *Solver {
	wrap := func(fn func(I, O) (int, error)) func(input, opts any) (int, error) {
		return func(input, opts any) (int, error) {
			in, ok := input.(I)
			if !ok {
				return 0, fmt.Errorf("%s: input has type %T", name, input)
			}
			o, ok := opts.(*O)
			if !ok {
				return 0, fmt.Errorf("%s: options have type %T, want *%T", name, opts, *new(O))
			}
			return fn(in, *o)
		}
	}

	return &Solver{
		Name: name,
		NewOptions: func() any {
			o := defaults()
			return &o
		},
		Parse: func(r io.Reader) (any, error) {
			return parse(r)
		},
		parts: [2]func(input, opts any) (int, error){wrap(part1), wrap(part2)},
	}
}

// Solve runs part (1 or 2) on a parsed input with the given options, which
// must come from NewOptions.
func (s *Solver) Solve(part int, input, opts any) (int, error) {
	if part < 1 || part > len(s.parts) {
		return 0, fmt.Errorf("%s: no part %d", s.Name, part)
	}
	return s.parts[part-1](input, opts)
}
