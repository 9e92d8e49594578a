package registry

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scaleOptions struct {
	Factor int
}

func parseInt(r io.Reader) (int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

func TestNewSolver(t *testing.T) {
	s := NewSolver("double", parseInt,
		func(n int) (int, error) { return 2 * n, nil },
		func(n int) (int, error) { return 3 * n, nil },
	)

	input, err := s.Parse(strings.NewReader("7\n"))
	require.NoError(t, err)

	opts := s.NewOptions()
	assert.IsType(t, &NoOptions{}, opts)

	p1, err := s.Solve(1, input, opts)
	require.NoError(t, err)
	assert.Equal(t, 14, p1)

	p2, err := s.Solve(2, input, opts)
	require.NoError(t, err)
	assert.Equal(t, 21, p2)
}

func TestNewSolverWithOptions(t *testing.T) {
	s := NewSolverWithOptions("scale", parseInt,
		func() scaleOptions { return scaleOptions{Factor: 2} },
		func(n int, o scaleOptions) (int, error) { return n * o.Factor, nil },
		func(n int, o scaleOptions) (int, error) { return n + o.Factor, nil },
	)

	opts := s.NewOptions()
	got, err := s.Solve(1, 5, opts)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	// Each call hands out a fresh copy of the defaults.
	opts.(*scaleOptions).Factor = 100
	assert.Equal(t, 2, s.NewOptions().(*scaleOptions).Factor)

	got, err = s.Solve(2, 5, opts)
	require.NoError(t, err)
	assert.Equal(t, 105, got)
}

func TestSolve_Errors(t *testing.T) {
	s := NewSolver("double", parseInt,
		func(n int) (int, error) { return 2 * n, nil },
		func(n int) (int, error) { return 3 * n, nil },
	)

	_, err := s.Solve(3, 1, s.NewOptions())
	require.ErrorContains(t, err, "no part 3")

	_, err = s.Solve(1, "not an int", s.NewOptions())
	require.ErrorContains(t, err, "input has type string")

	_, err = s.Solve(1, 1, scaleOptions{})
	require.ErrorContains(t, err, "options have type")
}
