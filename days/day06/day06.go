// Package day06 solves "Wait For It": counting the button hold times that
// beat each boat race record.
package day06

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/mathx"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Race is one race's duration and the distance record to beat.
type Race struct {
	Time, Record int
}

// Input holds the races in column order plus the raw digit strings, which
// part 2 joins into one long race.
type Input struct {
	Races []Race

	timeDigits, recordDigits string
}

// Parse reads the Time and Distance lines.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) != 2 {
		return nil, fmt.Errorf("want 2 lines, got %d", len(lines))
	}
	timeStr, err := textinput.CutPrefix(lines[0], "Time:")
	if err != nil {
		return nil, err
	}
	distStr, err := textinput.CutPrefix(lines[1], "Distance:")
	if err != nil {
		return nil, err
	}
	times, err := textinput.Ints(timeStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse times: %w", err)
	}
	records, err := textinput.Ints(distStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse distances: %w", err)
	}
	if len(times) != len(records) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(records))
	}

	in := &Input{
		Races:        make([]Race, len(times)),
		timeDigits:   strings.Join(strings.Fields(timeStr), ""),
		recordDigits: strings.Join(strings.Fields(distStr), ""),
	}
	for i := range times {
		in.Races[i] = Race{Time: times[i], Record: records[i]}
	}
	return in, nil
}

// Part1 multiplies together the number of ways to win each race.
func Part1(in *Input) (int, error) {
	if len(in.Races) == 0 {
		return 0, errors.New("no races")
	}
	product := 1
	for _, r := range in.Races {
		product *= r.WaysToWin()
	}
	return product, nil
}

// Part2 ignores the spaces between numbers and counts the ways to win the
// single resulting race.
func Part2(in *Input) (int, error) {
	t, err := strconv.Atoi(in.timeDigits)
	if err != nil {
		return 0, fmt.Errorf("invalid race time %q: %w", in.timeDigits, err)
	}
	d, err := strconv.Atoi(in.recordDigits)
	if err != nil {
		return 0, fmt.Errorf("invalid race record %q: %w", in.recordDigits, err)
	}
	return Race{Time: t, Record: d}.WaysToWin(), nil
}

// WaysToWin counts the hold times h in [0, Time] with h*(Time-h) > Record.
// The bounds come from the roots of h^2 - Time*h + Record = 0 and are then
// nudged so float rounding cannot admit a tie or drop a winner.
func (r Race) WaysToWin() int {
	lo, hi, ok := mathx.QuadraticRoots(1, -float64(r.Time), float64(r.Record))
	if !ok {
		return 0
	}
	first := max(int(math.Floor(lo))+1, 0)
	last := min(int(math.Ceil(hi))-1, r.Time)

	for first <= last && !r.beats(first) {
		first++
	}
	for first > 0 && r.beats(first-1) {
		first--
	}
	for last >= first && !r.beats(last) {
		last--
	}
	for last < r.Time && r.beats(last+1) {
		last++
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

func (r Race) beats(hold int) bool {
	return hold*(r.Time-hold) > r.Record
}
