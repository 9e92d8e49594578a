// Package day02 solves "Cube Conundrum": checking games of coloured cube
// draws against a bag's contents.
package day02

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Input is the list of recorded games.
type Input struct {
	Games []Game
}

// Game is one game and every handful revealed during it.
type Game struct {
	ID       int
	Handfuls []Handful
}

// Handful counts the cubes of each colour shown at once.
type Handful struct {
	Red, Green, Blue int
}

// Options holds the bag's cube counts for part 1.
type Options struct {
	Red   int `hcl:"red,optional"`
	Green int `hcl:"green,optional"`
	Blue  int `hcl:"blue,optional"`
}

// DefaultOptions returns the bag described in the puzzle text.
func DefaultOptions() Options {
	return Options{Red: 12, Green: 13, Blue: 14}
}

// Parse reads one game per line.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Games: make([]Game, 0, len(lines))}
	for _, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %q: %w", line, err)
		}
		in.Games = append(in.Games, g)
	}
	return in, nil
}

// Part1 sums the IDs of games that were possible with the given bag.
func Part1(in *Input, bag Options) (int, error) {
	sum := 0
	for _, g := range in.Games {
		if g.possibleWith(bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of the smallest bag that makes each game possible.
func Part2(in *Input, _ Options) (int, error) {
	sum := 0
	for _, g := range in.Games {
		m := g.minimumBag()
		sum += m.Red * m.Green * m.Blue
	}
	return sum, nil
}

func (g Game) possibleWith(bag Options) bool {
	for _, h := range g.Handfuls {
		if h.Red > bag.Red || h.Green > bag.Green || h.Blue > bag.Blue {
			return false
		}
	}
	return true
}

func (g Game) minimumBag() Handful {
	var m Handful
	for _, h := range g.Handfuls {
		m.Red = max(m.Red, h.Red)
		m.Green = max(m.Green, h.Green)
		m.Blue = max(m.Blue, h.Blue)
	}
	return m
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue".
func parseGame(line string) (Game, error) {
	label, data, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' after game label")
	}
	idStr, err := textinput.CutPrefix(strings.TrimSpace(label), "Game ")
	if err != nil {
		return Game{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("invalid game number %q", idStr)
	}

	g := Game{ID: id}
	for _, segment := range strings.Split(data, ";") {
		h, err := parseHandful(segment)
		if err != nil {
			return Game{}, fmt.Errorf("error parsing handful: %w", err)
		}
		g.Handfuls = append(g.Handfuls, h)
	}
	return g, nil
}

// parseHandful parses "3 blue, 4 red, 2 green".
func parseHandful(s string) (Handful, error) {
	var h Handful
	for _, pair := range strings.Split(s, ",") {
		fields := strings.Fields(pair)
		if len(fields) != 2 {
			return Handful{}, fmt.Errorf("invalid format: %q", strings.TrimSpace(pair))
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Handful{}, fmt.Errorf("invalid number: %q", fields[0])
		}
		switch fields[1] {
		case "red":
			h.Red += n
		case "green":
			h.Green += n
		case "blue":
			h.Blue += n
		default:
			return Handful{}, fmt.Errorf("invalid color: %q", fields[1])
		}
	}
	return h, nil
}
