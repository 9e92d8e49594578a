// Package day14 solves "Parabolic Reflector Dish": tilting a platform of
// rolling rocks and measuring the load on its north beams.
package day14

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

const (
	round = 'O'
	cube  = '#'
	empty = '.'
)

// Options configures part 2.
type Options struct {
	Cycles int `hcl:"cycles,optional"`
}

// DefaultOptions returns the spin count from the puzzle text.
func DefaultOptions() Options {
	return Options{Cycles: 1_000_000_000}
}

// Input is the platform as first observed.
type Input struct {
	Platform grid.Grid[byte]
}

// Parse reads the platform.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	for _, row := range g {
		for _, c := range row {
			if c != round && c != cube && c != empty {
				return nil, fmt.Errorf("unexpected tile %q", c)
			}
		}
	}
	return &Input{Platform: g}, nil
}

// Part1 returns the north load after tilting north once.
func Part1(in *Input, _ Options) (int, error) {
	g := in.Platform.Clone()
	Tilt(g, grid.Up)
	return NorthLoad(g), nil
}

// Part2 returns the north load after the configured number of spin cycles.
// Platform states repeat quickly, so only the first loop is simulated.
func Part2(in *Input, opts Options) (int, error) {
	if opts.Cycles < 0 {
		return 0, errors.New("cycles must not be negative")
	}
	g := in.Platform.Clone()
	seen := map[string]int{grid.Format(g): 0}
	for i := 1; i <= opts.Cycles; i++ {
		Spin(g)
		key := grid.Format(g)
		if first, ok := seen[key]; ok {
			period := i - first
			for n := (opts.Cycles - i) % period; n > 0; n-- {
				Spin(g)
			}
			break
		}
		seen[key] = i
	}
	return NorthLoad(g), nil
}

// Spin tilts g north, west, south and then east.
func Spin(g grid.Grid[byte]) {
	for _, d := range [...]grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right} {
		Tilt(g, d)
	}
}

// Tilt rolls every round rock in g as far as it goes towards d.
func Tilt(g grid.Grid[byte], d grid.Direction) {
	rows, cols := g.Rows(), g.Cols()
	if d == grid.Up || d == grid.Down {
		line := make([]grid.Pos, rows)
		for c := 0; c < cols; c++ {
			for i := range line {
				r := i
				if d == grid.Down {
					r = rows - 1 - i
				}
				line[i] = grid.Pos{Row: r, Col: c}
			}
			roll(g, line)
		}
		return
	}

	line := make([]grid.Pos, cols)
	for r := 0; r < rows; r++ {
		for i := range line {
			c := i
			if d == grid.Right {
				c = cols - 1 - i
			}
			line[i] = grid.Pos{Row: r, Col: c}
		}
		roll(g, line)
	}
}

// roll packs the round rocks of one line towards line[0], stopping at cube
// rocks.
func roll(g grid.Grid[byte], line []grid.Pos) {
	free := 0
	for i, p := range line {
		switch g.At(p) {
		case cube:
			free = i + 1
		case round:
			g.Set(p, empty)
			g.Set(line[free], round)
			free++
		}
	}
}

// NorthLoad weighs each round rock by its distance from the south edge.
func NorthLoad(g grid.Grid[byte]) int {
	load := 0
	for r, row := range g {
		for _, c := range row {
			if c == round {
				load += g.Rows() - r
			}
		}
	}
	return load
}
