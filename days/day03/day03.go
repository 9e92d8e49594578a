// Package day03 solves "Gear Ratios": finding the part numbers of an engine
// schematic.
package day03

import (
	"fmt"
	"io"

	"github.com/specialistvlad/aoc2023/internal/grid"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Number is a maximal run of digits on one row.
type Number struct {
	Value int
	Row   int
	Start int // first column
	End   int // last column, inclusive
}

// Symbol is any schematic cell that is neither a digit nor '.'.
type Symbol struct {
	Char byte
	Pos  grid.Pos
}

// Input is the decoded schematic.
type Input struct {
	Numbers []Number
	Symbols []Symbol
}

// Parse scans the schematic for numbers and symbols.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLines(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to read schematic: %w", err)
	}

	in := &Input{}
	for row, line := range g {
		for col := 0; col < len(line); col++ {
			c := line[col]
			switch {
			case isDigit(c):
				n := Number{Row: row, Start: col}
				for col < len(line) && isDigit(line[col]) {
					n.Value = n.Value*10 + int(line[col]-'0')
					col++
				}
				col--
				n.End = col
				in.Numbers = append(in.Numbers, n)
			case c != '.':
				in.Symbols = append(in.Symbols, Symbol{Char: c, Pos: grid.Pos{Row: row, Col: col}})
			}
		}
	}
	return in, nil
}

// Part1 sums every number adjacent to at least one symbol.
func Part1(in *Input) (int, error) {
	sum := 0
	for _, n := range in.Numbers {
		for _, s := range in.Symbols {
			if n.adjacent(s.Pos) {
				sum += n.Value
				break
			}
		}
	}
	return sum, nil
}

// Part2 sums the gear ratios: the product of the two numbers next to a '*'
// that touches exactly two numbers.
func Part2(in *Input) (int, error) {
	sum := 0
	for _, s := range in.Symbols {
		if s.Char != '*' {
			continue
		}
		var touching []int
		for _, n := range in.Numbers {
			if n.adjacent(s.Pos) {
				touching = append(touching, n.Value)
			}
		}
		if len(touching) == 2 {
			sum += touching[0] * touching[1]
		}
	}
	return sum, nil
}

// adjacent reports whether p lies in the box one cell around n.
func (n Number) adjacent(p grid.Pos) bool {
	return p.Row >= n.Row-1 && p.Row <= n.Row+1 &&
		p.Col >= n.Start-1 && p.Col <= n.End+1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
