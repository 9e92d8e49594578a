// Package day05 solves "If You Give A Seed A Fertilizer": pushing seed
// numbers, and later whole seed ranges, through a chain of almanac maps.
package day05

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Span is a half-open interval [Start, End).
type Span struct {
	Start, End int
}

// Empty reports whether s holds no values.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Entry maps source values [Src, Src+Len) onto [Dst, Dst+Len).
type Entry struct {
	Dst, Src, Len int
}

// Map is one almanac step such as "seed-to-soil".
type Map struct {
	Name    string
	Entries []Entry
}

// Input holds the seed numbers and the maps in application order.
type Input struct {
	Seeds []int
	Maps  []Map
}

// Parse reads the seeds block followed by one block per map.
func Parse(r io.Reader) (*Input, error) {
	blocks, err := textinput.Blocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks[0]) != 1 {
		return nil, errors.New("seeds block must be a single line")
	}
	rest, err := textinput.CutPrefix(blocks[0][0], "seeds:")
	if err != nil {
		return nil, err
	}
	in := &Input{}
	if in.Seeds, err = textinput.Ints(rest); err != nil {
		return nil, fmt.Errorf("failed to parse seeds: %w", err)
	}

	for _, block := range blocks[1:] {
		m, err := parseMap(block)
		if err != nil {
			return nil, err
		}
		in.Maps = append(in.Maps, m)
	}
	return in, nil
}

// Part1 returns the lowest location any seed maps to.
func Part1(in *Input) (int, error) {
	if len(in.Seeds) == 0 {
		return 0, errors.New("no seeds")
	}
	lowest := math.MaxInt
	for _, s := range in.Seeds {
		v := s
		for _, m := range in.Maps {
			v = m.Apply(v)
		}
		lowest = min(lowest, v)
	}
	return lowest, nil
}

// Part2 reads the seeds as (start, length) pairs and returns the lowest
// location reachable from any seed in any range.
func Part2(in *Input) (int, error) {
	if len(in.Seeds) == 0 || len(in.Seeds)%2 != 0 {
		return 0, fmt.Errorf("seed ranges need an even, non-zero count of numbers, got %d", len(in.Seeds))
	}
	spans := make([]Span, 0, len(in.Seeds)/2)
	for i := 0; i < len(in.Seeds); i += 2 {
		if in.Seeds[i+1] > 0 {
			spans = append(spans, Span{in.Seeds[i], in.Seeds[i] + in.Seeds[i+1]})
		}
	}
	if len(spans) == 0 {
		return 0, errors.New("every seed range is empty")
	}
	for _, m := range in.Maps {
		spans = m.ApplySpans(spans)
	}

	lowest := math.MaxInt
	for _, s := range spans {
		lowest = min(lowest, s.Start)
	}
	return lowest, nil
}

// Apply maps a single value; values outside every entry pass through.
func (m Map) Apply(v int) int {
	for _, e := range m.Entries {
		if v >= e.Src && v < e.Src+e.Len {
			return e.Dst + v - e.Src
		}
	}
	return v
}

// ApplySpans maps every span, splitting it where it crosses entry
// boundaries. Pieces that no entry covers pass through unchanged.
func (m Map) ApplySpans(spans []Span) []Span {
	var out []Span
	pending := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.Empty() {
			pending = append(pending, s)
		}
	}
	for _, e := range m.Entries {
		var next []Span
		for _, s := range pending {
			lo, hi := max(s.Start, e.Src), min(s.End, e.Src+e.Len)
			if lo >= hi {
				next = append(next, s)
				continue
			}
			out = append(out, Span{lo - e.Src + e.Dst, hi - e.Src + e.Dst})
			if s.Start < lo {
				next = append(next, Span{s.Start, lo})
			}
			if hi < s.End {
				next = append(next, Span{hi, s.End})
			}
		}
		pending = next
	}
	return append(out, pending...)
}

func parseMap(block []string) (Map, error) {
	name, ok := strings.CutSuffix(block[0], " map:")
	if !ok {
		return Map{}, fmt.Errorf("expected map title, got %q", block[0])
	}
	m := Map{Name: name}
	for _, line := range block[1:] {
		nums, err := textinput.Ints(line)
		if err != nil {
			return Map{}, fmt.Errorf("map %s: %w", name, err)
		}
		if len(nums) != 3 {
			return Map{}, fmt.Errorf("map %s: want 3 numbers in %q", name, line)
		}
		m.Entries = append(m.Entries, Entry{Dst: nums[0], Src: nums[1], Len: nums[2]})
	}
	return m, nil
}
