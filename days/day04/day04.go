// Package day04 solves "Scratchcards".
package day04

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Input is the pile of scratchcards in order.
type Input struct {
	Cards []Card
}

// Parse reads one card per line.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Cards: make([]Card, 0, len(lines))}
	for _, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("failed to parse line %q: %w", line, err)
		}
		in.Cards = append(in.Cards, c)
	}
	return in, nil
}

// Part1 sums card points: 1 for the first match, doubled for each further one.
func Part1(in *Input) (int, error) {
	sum := 0
	for _, c := range in.Cards {
		if m := c.Matches(); m > 0 {
			sum += 1 << (m - 1)
		}
	}
	return sum, nil
}

// Part2 counts the cards held once every won copy has been processed.
func Part2(in *Input) (int, error) {
	copies := make([]int, len(in.Cards))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, c := range in.Cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}

// Matches counts the numbers on the card that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	m := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			m++
		}
	}
	return m
}

func parseCard(line string) (Card, error) {
	label, data, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' after card label")
	}
	idStr, err := textinput.CutPrefix(label, "Card")
	if err != nil {
		return Card{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card number %q", idStr)
	}

	winStr, haveStr, ok := strings.Cut(data, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing '|' separator")
	}
	c := Card{ID: id}
	if c.Winning, err = textinput.Ints(winStr); err != nil {
		return Card{}, fmt.Errorf("winning numbers: %w", err)
	}
	if c.Have, err = textinput.Ints(haveStr); err != nil {
		return Card{}, fmt.Errorf("card numbers: %w", err)
	}
	return c, nil
}
