// Package day16 solves "The Floor Will Be Lava": following beams through a
// contraption of mirrors and splitters.
package day16

import (
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Input is the contraption layout.
type Input struct {
	Layout grid.Grid[byte]
}

// Beam is a beam front entering a tile.
type Beam struct {
	Pos     grid.Pos
	Heading grid.Direction
}

// Parse reads the layout.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	var bad error
	g.Positions(func(p grid.Pos, c byte) {
		switch c {
		case '.', '/', '\\', '|', '-':
		default:
			if bad == nil {
				bad = fmt.Errorf("unexpected tile %q at %v", c, p)
			}
		}
	})
	if bad != nil {
		return nil, bad
	}
	return &Input{Layout: g}, nil
}

// Part1 counts energized tiles for a beam entering the top-left corner
// heading right.
func Part1(in *Input) (int, error) {
	return in.Energized(Beam{Pos: grid.Pos{}, Heading: grid.Right}), nil
}

// Part2 tries every edge entry point and returns the best energized count.
func Part2(in *Input) (int, error) {
	rows, cols := in.Layout.Rows(), in.Layout.Cols()
	best := 0
	for r := 0; r < rows; r++ {
		best = max(best,
			in.Energized(Beam{grid.Pos{Row: r, Col: 0}, grid.Right}),
			in.Energized(Beam{grid.Pos{Row: r, Col: cols - 1}, grid.Left}))
	}
	for c := 0; c < cols; c++ {
		best = max(best,
			in.Energized(Beam{grid.Pos{Row: 0, Col: c}, grid.Down}),
			in.Energized(Beam{grid.Pos{Row: rows - 1, Col: c}, grid.Up}))
	}
	return best, nil
}

// Energized traces all beams spawned by start and counts the tiles they
// cross. Each tile remembers the headings already seen so loops end.
func (in *Input) Energized(start Beam) int {
	seen := grid.Make[uint8](in.Layout.Rows(), in.Layout.Cols())
	count := 0

	stack := []Beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mask, ok := seen.AtOk(b.Pos)
		if !ok || mask&b.Heading.Bit() != 0 {
			continue
		}
		if mask == 0 {
			count++
		}
		seen.Set(b.Pos, mask|b.Heading.Bit())

		for _, d := range deflect(in.Layout.At(b.Pos), b.Heading) {
			stack = append(stack, Beam{Pos: b.Pos.Step(d), Heading: d})
		}
	}
	return count
}

// deflect returns the headings a beam leaves a tile with.
func deflect(tile byte, h grid.Direction) []grid.Direction {
	switch tile {
	case '/':
		return []grid.Direction{[4]grid.Direction{grid.Right, grid.Up, grid.Left, grid.Down}[h]}
	case '\\':
		return []grid.Direction{[4]grid.Direction{grid.Left, grid.Down, grid.Right, grid.Up}[h]}
	case '|':
		if h == grid.Left || h == grid.Right {
			return []grid.Direction{grid.Up, grid.Down}
		}
	case '-':
		if h == grid.Up || h == grid.Down {
			return []grid.Direction{grid.Left, grid.Right}
		}
	}
	return []grid.Direction{h}
}
