// Package grid provides the 2-D grid, position and direction types used by
// the map-shaped puzzles.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/mathx"
)

// Pos is a cell coordinate. Row grows downwards, Col grows to the right.
type Pos struct {
	Row, Col int
}

// Add returns p translated by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.Row + d.Row, p.Col + d.Col}
}

// Step returns the neighbour of p in direction d.
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Delta())
}

// Manhattan returns the taxicab distance between p and q.
func (p Pos) Manhattan(q Pos) int {
	return mathx.AbsDiff(p.Row, q.Row) + mathx.AbsDiff(p.Col, q.Col)
}

// Neighbors8 returns the up to eight cells surrounding p, including
// diagonals. Bounds are not checked.
func (p Pos) Neighbors8() []Pos {
	out := make([]Pos, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			out = append(out, Pos{p.Row + dr, p.Col + dc})
		}
	}
	return out
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular grid stored row-major.
type Grid[T any] [][]T

// ErrRagged is returned when rows of a grid have different lengths.
var ErrRagged = errors.New("grid rows have different lengths")

// Make returns a rows x cols grid of zero values.
func Make[T any](rows, cols int) Grid[T] {
	g := make(Grid[T], rows)
	for i := range g {
		g[i] = make([]T, cols)
	}
	return g
}

// FromLines builds a byte grid from text lines.
func FromLines(lines []string) (Grid[byte], error) {
	if len(lines) == 0 {
		return nil, errors.New("grid has no rows")
	}
	g := make(Grid[byte], len(lines))
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(line), len(lines[0]), ErrRagged)
		}
		g[i] = []byte(line)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() int { return len(g) }

// Cols returns the number of columns.
func (g Grid[T]) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// In reports whether p lies inside the grid.
func (g Grid[T]) In(p Pos) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.Rows() && p.Col < g.Cols()
}

// At returns the value at p. It panics if p is out of bounds, like a slice index.
func (g Grid[T]) At(p Pos) T {
	return g[p.Row][p.Col]
}

// AtOk returns the value at p and whether p was inside the grid.
func (g Grid[T]) AtOk(p Pos) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Row][p.Col], true
}

// Set stores v at p.
func (g Grid[T]) Set(p Pos, v T) {
	g[p.Row][p.Col] = v
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Transpose returns a new grid with rows and columns swapped.
func (g Grid[T]) Transpose() Grid[T] {
	out := Make[T](g.Cols(), g.Rows())
	for r, row := range g {
		for c, v := range row {
			out[c][r] = v
		}
	}
	return out
}

// Positions calls fn for every cell in row-major order.
func (g Grid[T]) Positions(fn func(p Pos, v T)) {
	for r, row := range g {
		for c, v := range row {
			fn(Pos{r, c}, v)
		}
	}
}

// Find returns the first position holding v.
func Find[T comparable](g Grid[T], v T) (Pos, bool) {
	for r, row := range g {
		for c, x := range row {
			if x == v {
				return Pos{r, c}, true
			}
		}
	}
	return Pos{}, false
}

// Format renders a byte grid as newline separated rows.
func Format(g Grid[byte]) string {
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for _, row := range g {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
