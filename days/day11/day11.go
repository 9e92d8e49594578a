// Package day11 solves "Cosmic Expansion": summing the distances between
// every pair of galaxies after empty rows and columns grow.
package day11

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Options configures part 2.
type Options struct {
	// Expansion is how many rows or columns each empty one becomes.
	Expansion int `hcl:"expansion,optional"`
}

// DefaultOptions returns the puzzle's part 2 factor.
func DefaultOptions() Options {
	return Options{Expansion: 1_000_000}
}

// Input lists galaxy positions and which rows and columns are empty.
type Input struct {
	Galaxies  []grid.Pos
	EmptyRows []bool
	EmptyCols []bool
}

// Parse reads the image.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}

	in := &Input{
		EmptyRows: make([]bool, g.Rows()),
		EmptyCols: make([]bool, g.Cols()),
	}
	for i := range in.EmptyRows {
		in.EmptyRows[i] = true
	}
	for i := range in.EmptyCols {
		in.EmptyCols[i] = true
	}

	var bad error
	g.Positions(func(p grid.Pos, c byte) {
		switch c {
		case '#':
			in.Galaxies = append(in.Galaxies, p)
			in.EmptyRows[p.Row] = false
			in.EmptyCols[p.Col] = false
		case '.':
		default:
			if bad == nil {
				bad = fmt.Errorf("unexpected %q at %v", c, p)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}
	return in, nil
}

// Part1 sums pair distances with every empty row and column doubled.
func Part1(in *Input, _ Options) (int, error) {
	return in.SumDistances(2)
}

// Part2 sums pair distances with the configured expansion factor.
func Part2(in *Input, opts Options) (int, error) {
	return in.SumDistances(opts.Expansion)
}

// SumDistances returns the sum of Manhattan distances between all galaxy
// pairs after expanding each empty row and column into factor copies.
func (in *Input) SumDistances(factor int) (int, error) {
	if factor < 1 {
		return 0, errors.New("expansion factor must be at least 1")
	}
	rowAt := expandedCoords(in.EmptyRows, factor)
	colAt := expandedCoords(in.EmptyCols, factor)

	moved := make([]grid.Pos, len(in.Galaxies))
	for i, g := range in.Galaxies {
		moved[i] = grid.Pos{Row: rowAt[g.Row], Col: colAt[g.Col]}
	}

	sum := 0
	for i := range moved {
		for j := i + 1; j < len(moved); j++ {
			sum += moved[i].Manhattan(moved[j])
		}
	}
	return sum, nil
}

// expandedCoords maps each original index to its coordinate after
// expansion.
func expandedCoords(empty []bool, factor int) []int {
	out := make([]int, len(empty))
	next := 0
	for i, e := range empty {
		out[i] = next
		if e {
			next += factor
		} else {
			next++
		}
	}
	return out
}
