// Package day13 solves "Point of Incidence": locating the mirror line in
// each pattern of ash and rocks.
package day13

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// ErrNoReflection is returned when a pattern has no line with the required
// number of smudges.
var ErrNoReflection = errors.New("no reflection line")

// Input is the list of patterns.
type Input struct {
	Patterns []grid.Grid[byte]
}

// Parse reads patterns separated by blank lines.
func Parse(r io.Reader) (*Input, error) {
	blocks, err := textinput.Blocks(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Patterns: make([]grid.Grid[byte], 0, len(blocks))}
	for i, b := range blocks {
		g, err := grid.FromLines(b)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		in.Patterns = append(in.Patterns, g)
	}
	return in, nil
}

// Part1 sums the columns left of each vertical mirror and 100 times the
// rows above each horizontal one.
func Part1(in *Input) (int, error) {
	return summarize(in.Patterns, 0)
}

// Part2 is Part1 for the mirror lines that appear once exactly one smudge
// is fixed.
func Part2(in *Input) (int, error) {
	return summarize(in.Patterns, 1)
}

func summarize(patterns []grid.Grid[byte], smudges int) (int, error) {
	sum := 0
	for i, p := range patterns {
		if k, ok := reflectionRow(p, smudges); ok {
			sum += 100 * k
			continue
		}
		if k, ok := reflectionRow(p.Transpose(), smudges); ok {
			sum += k
			continue
		}
		return 0, fmt.Errorf("pattern %d: %w", i+1, ErrNoReflection)
	}
	return sum, nil
}

// reflectionRow finds k such that mirroring across the line between rows
// k-1 and k differs in exactly smudges cells.
func reflectionRow(g grid.Grid[byte], smudges int) (int, bool) {
	for k := 1; k < g.Rows(); k++ {
		diff := 0
		for a, b := k-1, k; a >= 0 && b < g.Rows() && diff <= smudges; a, b = a-1, b+1 {
			for c := range g[a] {
				if g[a][c] != g[b][c] {
					diff++
				}
			}
		}
		if diff == smudges {
			return k, true
		}
	}
	return 0, false
}
