// Package day10 solves "Pipe Maze": tracing the loop through the start tile
// and measuring it.
package day10

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/mathx"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// pipes maps each pipe tile to the two headings it connects.
var pipes = map[byte][2]grid.Direction{
	'|': {grid.Up, grid.Down},
	'-': {grid.Left, grid.Right},
	'L': {grid.Up, grid.Right},
	'J': {grid.Up, grid.Left},
	'7': {grid.Down, grid.Left},
	'F': {grid.Down, grid.Right},
}

// Input is the maze with S already replaced by the pipe it stands on.
type Input struct {
	Tiles grid.Grid[byte]
	Start grid.Pos
}

// Parse reads the maze and resolves the start tile.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, err
	}
	start, ok := grid.Find(g, 'S')
	if !ok {
		return nil, errors.New("maze has no start tile")
	}

	var open []grid.Direction
	for _, d := range grid.Directions {
		c, ok := g.AtOk(start.Step(d))
		if ok && connects(c, d.Opposite()) {
			open = append(open, d)
		}
	}
	if len(open) != 2 {
		return nil, fmt.Errorf("start tile at %v has %d connecting neighbours, want 2", start, len(open))
	}
	for c, dirs := range pipes {
		if (dirs[0] == open[0] && dirs[1] == open[1]) || (dirs[0] == open[1] && dirs[1] == open[0]) {
			g.Set(start, c)
			break
		}
	}
	return &Input{Tiles: g, Start: start}, nil
}

// Part1 returns the step count to the point of the loop farthest from the
// start, which is half the loop length.
func Part1(in *Input) (int, error) {
	loop, err := in.Loop()
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Part2 counts the tiles enclosed by the loop. The shoelace formula gives
// the loop's area and Pick's theorem turns it into interior lattice points.
func Part2(in *Input) (int, error) {
	loop, err := in.Loop()
	if err != nil {
		return 0, err
	}
	twiceArea := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twiceArea += p.Col*q.Row - q.Col*p.Row
	}
	area := mathx.Abs(twiceArea) / 2
	return area - len(loop)/2 + 1, nil
}

// Loop walks the pipe loop from the start and returns its tiles in order.
func (in *Input) Loop() ([]grid.Pos, error) {
	dirs, ok := pipes[in.Tiles.At(in.Start)]
	if !ok {
		return nil, fmt.Errorf("start tile %q is not a pipe", in.Tiles.At(in.Start))
	}

	loop := []grid.Pos{in.Start}
	pos, heading := in.Start, dirs[0]
	for {
		pos = pos.Step(heading)
		if pos == in.Start {
			return loop, nil
		}
		c, ok := in.Tiles.AtOk(pos)
		if !ok || !connects(c, heading.Opposite()) {
			return nil, fmt.Errorf("loop breaks at %v", pos)
		}
		loop = append(loop, pos)

		next := pipes[c]
		if next[0] == heading.Opposite() {
			heading = next[1]
		} else {
			heading = next[0]
		}
	}
}

func connects(c byte, d grid.Direction) bool {
	dirs, ok := pipes[c]
	return ok && (dirs[0] == d || dirs[1] == d)
}
