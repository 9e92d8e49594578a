// Package day09 solves "Mirage Maintenance": extrapolating sensor histories
// by repeated differencing.
package day09

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// ErrShortHistory is returned for a history with fewer than two values.
var ErrShortHistory = errors.New("history needs at least two values")

// Input is the list of value histories.
type Input struct {
	Histories [][]int
}

// Parse reads one history of space separated integers per line.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	in := &Input{Histories: make([][]int, 0, len(lines))}
	for i, line := range lines {
		h, err := textinput.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(h) < 2 {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrShortHistory)
		}
		in.Histories = append(in.Histories, h)
	}
	return in, nil
}

// Part1 sums the next value of every history.
func Part1(in *Input) (int, error) {
	sum := 0
	for _, h := range in.Histories {
		sum += Extrapolate(h)
	}
	return sum, nil
}

// Part2 sums the value that would precede every history.
func Part2(in *Input) (int, error) {
	sum := 0
	for _, h := range in.Histories {
		rev := slices.Clone(h)
		slices.Reverse(rev)
		sum += Extrapolate(rev)
	}
	return sum, nil
}

// Extrapolate predicts the value after the end of seq.
func Extrapolate(seq []int) int {
	allZero := true
	for _, v := range seq {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero || len(seq) == 0 {
		return 0
	}
	if len(seq) == 1 {
		return seq[0]
	}

	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	return seq[len(seq)-1] + Extrapolate(diffs)
}
