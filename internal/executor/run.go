package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
	"github.com/specialistvlad/aoc2023/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

var errSkipped = errors.New("run skipped")

// runOne parses a run's input file once and solves each requested part on it.
func (e *Executor) runOne(ctx context.Context, s *registry.Solver, run *config.Run, w io.Writer) error {
	logger := ctxlog.FromContext(ctx).With("run", run.Name)

	input, err := e.parseFile(s, run.File)
	if err != nil {
		if run.Optional && errors.Is(err, fs.ErrNotExist) {
			return errSkipped
		}
		return err
	}

	var mismatches []error
	for _, part := range run.Parts {
		opts := s.NewOptions()
		if err := e.conv.DecodeOptions(ctx, run.Options, opts); err != nil {
			return err
		}

		start := time.Now()
		got, err := s.Solve(part, input, opts)
		if err != nil {
			return fmt.Errorf("part %d: %w", part, err)
		}
		logger.Debug("Part solved.", "part", part, "answer", got, "took", time.Since(start).Round(time.Microsecond))

		line := fmt.Sprintf("%s: %d", partLabel(run.Name, part), got)
		if want, ok := run.Expected(part); ok {
			if answerMatches(got, want) {
				line += " ✅"
			} else {
				line += fmt.Sprintf(" ❌ (want %s)", want.AsBigFloat().Text('f', -1))
				mismatches = append(mismatches, fmt.Errorf("run %q part %d: got %d, want %s: %w",
					run.Name, part, got, want.AsBigFloat().Text('f', -1), ErrAnswerMismatch))
			}
		}
		fmt.Fprintln(w, line)
	}
	return errors.Join(mismatches...)
}

// parseFile opens path and hands it to the solver's parser.
func (e *Executor) parseFile(s *registry.Solver, path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	input, err := s.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return input, nil
}

// answerMatches compares a computed answer with an expected cty.Number.
func answerMatches(got int, want cty.Value) bool {
	if !want.IsKnown() || want.IsNull() || !want.Type().Equals(cty.Number) {
		return false
	}
	return cty.NumberIntVal(int64(got)).Equals(want).True()
}

// partLabel renders "Sample part 1" for a run named "sample" and plain
// "Part 1" for the run named "input".
func partLabel(runName string, part int) string {
	if runName == "" || runName == "input" {
		return fmt.Sprintf("Part %d", part)
	}
	return fmt.Sprintf("%s%s part %d", strings.ToUpper(runName[:1]), runName[1:], part)
}
