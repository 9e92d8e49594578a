// Package day07 solves "Camel Cards": ranking poker-like hands and summing
// their winnings.
package day07

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// HandType orders hand kinds from weakest to strongest.
type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards string
	Bid   int
}

// Input is the list of hands.
type Input struct {
	Hands []Hand
}

// Parse reads one "cards bid" pair per line.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Hands: make([]Hand, 0, len(lines))}
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("want \"cards bid\", got %q", line)
		}
		if len(fields[0]) != 5 {
			return nil, fmt.Errorf("hand %q must have 5 cards", fields[0])
		}
		for _, c := range fields[0] {
			if !strings.ContainsRune(cardOrder, c) {
				return nil, fmt.Errorf("hand %q has unknown card %q", fields[0], c)
			}
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid bid %q: %w", fields[1], err)
		}
		in.Hands = append(in.Hands, Hand{Cards: fields[0], Bid: bid})
	}
	return in, nil
}

// Part1 returns the total winnings: each bid times its hand's rank.
func Part1(in *Input) (int, error) {
	return winnings(in.Hands, false), nil
}

// Part2 is Part1 with J as a joker: it takes whatever card makes the best
// hand type and is the weakest card when breaking ties.
func Part2(in *Input) (int, error) {
	return winnings(in.Hands, true), nil
}

type rankedHand struct {
	typ    HandType
	values [5]int
	bid    int
}

func winnings(hands []Hand, jokers bool) int {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}

	ranked := make([]rankedHand, len(hands))
	for i, h := range hands {
		ranked[i] = rankedHand{typ: h.Type(jokers), bid: h.Bid}
		for j := 0; j < 5; j++ {
			ranked[i].values[j] = strings.IndexByte(order, h.Cards[j])
		}
	}
	slices.SortFunc(ranked, func(a, b rankedHand) int {
		if c := cmp.Compare(a.typ, b.typ); c != 0 {
			return c
		}
		return slices.Compare(a.values[:], b.values[:])
	})

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.bid
	}
	return total
}

// Type classifies the hand. With jokers, every J joins the largest group of
// other cards.
func (h Hand) Type(jokers bool) HandType {
	counts := make(map[rune]int, 5)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	if len(groups) == 0 {
		groups = append(groups, 0)
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}
