package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go
// code: every manifest puzzle needs a solver and every options block must
// decode into its solver's options type. Solvers without a manifest are only
// logged, since a run may point at a subset of the manifests.
func (r *Registry) ValidateRegistry(ctx context.Context, conv config.Converter) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		puzzle := r.Puzzles[name]
		solver, ok := r.Solvers[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("puzzle '%s' (%s): manifest declared, but no Go solver is registered", name, puzzle.Source))
			continue
		}
		if len(puzzle.Runs) == 0 {
			logger.Warn("Manifest declares no runs.", "puzzle", name, "source", puzzle.Source)
		}
		for _, run := range puzzle.Runs {
			if run.Options == nil {
				continue
			}
			if err := conv.DecodeOptions(ctx, run.Options, solver.NewOptions()); err != nil {
				errs = append(errs, fmt.Sprintf("puzzle '%s', run '%s': %v", name, run.Name, err))
			}
		}
	}

	for name := range r.Solvers {
		if _, ok := r.Puzzles[name]; !ok {
			logger.Debug("Solver has no manifest in the loaded paths.", "solver", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
