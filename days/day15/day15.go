// Package day15 solves "Lens Library": the HASH algorithm and the HASHMAP
// lens boxes it indexes.
package day15

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// Op is what a step does to its box.
type Op byte

const (
	Remove Op = '-'
	Insert Op = '='
)

// Step is one comma separated initialization step.
type Step struct {
	Raw   string
	Label string
	Op    Op
	Focal int // only set for Insert
}

// Input is the initialization sequence.
type Input struct {
	Steps []Step
}

// Parse reads the comma separated steps. Newlines are ignored.
func Parse(r io.Reader) (*Input, error) {
	lines, err := textinput.Lines(r)
	if err != nil {
		return nil, err
	}
	seq := strings.Join(lines, "")

	in := &Input{}
	for _, raw := range strings.Split(seq, ",") {
		s, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", raw, err)
		}
		in.Steps = append(in.Steps, s)
	}
	return in, nil
}

// Part1 sums the HASH of every step.
func Part1(in *Input) (int, error) {
	sum := 0
	for _, s := range in.Steps {
		sum += Hash(s.Raw)
	}
	return sum, nil
}

// Part2 runs the steps through the boxes and returns the focusing power.
func Part2(in *Input) (int, error) {
	var boxes [256][]lens
	for _, s := range in.Steps {
		b := &boxes[Hash(s.Label)]
		i := slices.IndexFunc(*b, func(l lens) bool { return l.label == s.Label })
		switch {
		case s.Op == Remove && i >= 0:
			*b = slices.Delete(*b, i, i+1)
		case s.Op == Insert && i >= 0:
			(*b)[i].focal = s.Focal
		case s.Op == Insert:
			*b = append(*b, lens{label: s.Label, focal: s.Focal})
		}
	}

	power := 0
	for bi, b := range boxes {
		for li, l := range b {
			power += (bi + 1) * (li + 1) * l.focal
		}
	}
	return power, nil
}

// Hash is the puzzle's HASH: for each byte, add it, multiply by 17, mod 256.
func Hash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

type lens struct {
	label string
	focal int
}

func parseStep(raw string) (Step, error) {
	if raw == "" {
		return Step{}, errors.New("empty step")
	}
	if label, ok := strings.CutSuffix(raw, "-"); ok {
		if label == "" {
			return Step{}, errors.New("missing label")
		}
		return Step{Raw: raw, Label: label, Op: Remove}, nil
	}
	label, focal, ok := strings.Cut(raw, "=")
	if !ok || label == "" {
		return Step{}, errors.New("want label=n or label-")
	}
	n, err := strconv.Atoi(focal)
	if err != nil || n < 1 || n > 9 {
		return Step{}, fmt.Errorf("focal length must be 1-9, got %q", focal)
	}
	return Step{Raw: raw, Label: label, Op: Insert, Focal: n}, nil
}
