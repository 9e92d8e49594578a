// Package executor runs the selected puzzles. Puzzles are solved
// concurrently on a bounded worker pool, while their report lines are
// buffered and written in selection order so the output is deterministic.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
	"github.com/specialistvlad/aoc2023/internal/registry"
	"golang.org/x/sync/errgroup"
)

// ErrAnswerMismatch is returned when a part's answer differs from the
// expected value pinned in the manifest.
var ErrAnswerMismatch = errors.New("answer mismatch")

// Options tune a single execution.
type Options struct {
	Workers     int
	SamplesOnly bool // skip runs marked optional (personal puzzle inputs)
}

// Executor solves puzzles and reports their answers.
type Executor struct {
	conv config.Converter
	opts Options
}

// New creates an executor. Workers below 1 are treated as 1.
func New(conv config.Converter, opts Options) *Executor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Executor{conv: conv, opts: opts}
}

// Run solves every entry and writes the report to out. The first failing
// puzzle cancels puzzles that have not started yet; reports of puzzles that
// finished are still written, in order, before the error is returned.
func (e *Executor) Run(ctx context.Context, entries []registry.Entry, out io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting.", "puzzles", len(entries), "workers", e.opts.Workers)

	reports := make([]*bytes.Buffer, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				logger.Debug("Skipping puzzle after earlier failure.", "puzzle", entry.Puzzle.Name)
				return nil
			}
			buf := &bytes.Buffer{}
			reports[i] = buf
			return e.runPuzzle(gctx, entry, buf)
		})
	}
	runErr := g.Wait()

	for _, buf := range reports {
		if buf == nil {
			continue
		}
		if _, err := buf.WriteTo(out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return runErr
}

// runPuzzle performs every run of one puzzle, writing its report into w.
func (e *Executor) runPuzzle(ctx context.Context, entry registry.Entry, w io.Writer) error {
	p := entry.Puzzle
	logger := ctxlog.FromContext(ctx).With("puzzle", p.Name)
	logger.Info("▶️ Solving puzzle.", "runs", len(p.Runs))

	fmt.Fprintf(w, "--- %s: %s ---\n", p.Name, p.Title)

	var mismatches []error
	for _, run := range p.Runs {
		if e.opts.SamplesOnly && run.Optional {
			logger.Debug("Skipping optional run.", "run", run.Name)
			continue
		}
		err := e.runOne(ctx, entry.Solver, run, w)
		switch {
		case errors.Is(err, errSkipped):
			logger.Warn("Input file not found, skipping optional run.", "run", run.Name, "file", run.File)
		case errors.Is(err, ErrAnswerMismatch):
			mismatches = append(mismatches, err)
		case err != nil:
			return fmt.Errorf("%s, run %q: %w", p.Name, run.Name, err)
		}
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%s: %w", p.Name, errors.Join(mismatches...))
	}
	logger.Info("✅ Puzzle solved.")
	return nil
}
