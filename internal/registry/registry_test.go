package registry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/aoc2023/internal/config"
	"github.com/specialistvlad/aoc2023/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(name string) *Solver {
	return NewSolver(name, parseInt,
		func(n int) (int, error) { return n, nil },
		func(n int) (int, error) { return n, nil },
	)
}

type testModule struct{ names []string }

func (m testModule) Register(r *Registry) {
	for _, n := range m.names {
		r.RegisterSolver(newTestSolver(n))
	}
}

// fakeConverter records decode calls and fails for bodies listed in fail.
// Bodies are keyed by pointer identity, so tests wrap them in pointers.
type fakeConverter struct {
	calls int
	fail  map[hcl.Body]bool
}

func (f *fakeConverter) DecodeOptions(_ context.Context, body hcl.Body, _ any) error {
	f.calls++
	if f.fail[body] {
		return errors.New("bad options")
	}
	return nil
}

func TestRegisterSolver_DuplicatePanics(t *testing.T) {
	r := New()
	testModule{names: []string{"day01"}}.Register(r)

	assert.Panics(t, func() { r.RegisterSolver(newTestSolver("day01")) })
}

func TestSelect(t *testing.T) {
	// --- Arrange ---
	r := New()
	testModule{names: []string{"day01", "day02", "day03"}}.Register(r)
	r.PopulateFromModel(&config.Model{Puzzles: map[string]*config.Puzzle{
		"day03": {Name: "day03"},
		"day01": {Name: "day01"},
		"day04": {Name: "day04"},
	}})

	// --- Act & Assert ---
	assert.Equal(t, []string{"day01", "day03", "day04"}, r.Names())

	entries, err := r.Select("day03", "day01")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "day03", entries[0].Puzzle.Name)
	assert.Equal(t, "day03", entries[0].Solver.Name)
	assert.Equal(t, "day01", entries[1].Solver.Name)

	_, err = r.Select("day02")
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	assert.Contains(t, err.Error(), "no manifest")

	_, err = r.Select("day04")
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	assert.Contains(t, err.Error(), "no solver")

	_, err = r.Select()
	require.ErrorIs(t, err, ErrUnknownPuzzle, "selecting everything includes day04, which has no solver")
}

func TestValidateRegistry(t *testing.T) {
	goodBody := &struct{ hcl.Body }{hcl.EmptyBody()}
	badBody := &struct{ hcl.Body }{hcl.EmptyBody()}

	testCases := []struct {
		name      string
		solvers   []string
		puzzles   map[string]*config.Puzzle
		wantErr   []string
		wantCalls int
	}{
		{
			name:    "parity",
			solvers: []string{"day01"},
			puzzles: map[string]*config.Puzzle{
				"day01": {Name: "day01", Runs: []*config.Run{{Name: "sample", Options: goodBody}, {Name: "input"}}},
			},
			wantCalls: 1,
		},
		{
			name:    "solver without manifest is allowed",
			solvers: []string{"day01", "day02"},
			puzzles: map[string]*config.Puzzle{"day01": {Name: "day01"}},
		},
		{
			name:    "manifest without solver",
			solvers: []string{"day01"},
			puzzles: map[string]*config.Puzzle{
				"day01": {Name: "day01"},
				"day05": {Name: "day05", Source: "days/day05/puzzle.hcl"},
			},
			wantErr: []string{"puzzle 'day05' (days/day05/puzzle.hcl)", "no Go solver"},
		},
		{
			name:    "options do not decode",
			solvers: []string{"day01"},
			puzzles: map[string]*config.Puzzle{
				"day01": {Name: "day01", Runs: []*config.Run{{Name: "sample", Options: badBody}}},
			},
			wantErr:   []string{"run 'sample'", "bad options"},
			wantCalls: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			r := New()
			testModule{names: tc.solvers}.Register(r)
			r.PopulateFromModel(&config.Model{Puzzles: tc.puzzles})
			conv := &fakeConverter{fail: map[hcl.Body]bool{badBody: true}}
			logs := &bytes.Buffer{}
			ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, nil)))

			// --- Act ---
			err := r.ValidateRegistry(ctx, conv)

			// --- Assert ---
			assert.Equal(t, tc.wantCalls, conv.calls)
			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
