// Package day08 solves "Haunted Wasteland": walking a left/right network
// until the exit is reached.
package day08

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/mathx"
	"github.com/specialistvlad/aoc2023/internal/textinput"
)

// ErrNoExit is returned when a walk loops forever without reaching an exit.
var ErrNoExit = errors.New("walk never reaches an exit")

// Node is one network entry and its left and right neighbours.
type Node struct {
	Left, Right string
}

// Input is the instruction string and the network it walks.
type Input struct {
	Directions string
	Network    map[string]Node
}

// Parse reads the direction line, a blank line and then one node per line.
func Parse(r io.Reader) (*Input, error) {
	blocks, err := textinput.Blocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, errors.New("want a direction line, a blank line and the node list")
	}

	in := &Input{
		Directions: strings.TrimSpace(blocks[0][0]),
		Network:    make(map[string]Node, len(blocks[1])),
	}
	if in.Directions == "" || strings.Trim(in.Directions, "LR") != "" {
		return nil, fmt.Errorf("directions must be L or R, got %q", in.Directions)
	}

	for _, line := range blocks[1] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("missing ' = ' in %q", line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if ok {
			rest, ok = strings.CutSuffix(rest, ")")
		}
		if !ok {
			return nil, fmt.Errorf("neighbours must be parenthesised in %q", line)
		}
		left, right, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, fmt.Errorf("missing ', ' between neighbours in %q", line)
		}
		if _, dup := in.Network[name]; dup {
			return nil, fmt.Errorf("node %s defined twice", name)
		}
		in.Network[name] = Node{Left: left, Right: right}
	}

	for name, n := range in.Network {
		for _, ref := range []string{n.Left, n.Right} {
			if _, ok := in.Network[ref]; !ok {
				return nil, fmt.Errorf("node %s references unknown node %s", name, ref)
			}
		}
	}
	return in, nil
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(in *Input) (int, error) {
	if _, ok := in.Network["AAA"]; !ok {
		return 0, errors.New("network has no AAA node")
	}
	return in.stepsUntil("AAA", func(n string) bool { return n == "ZZZ" })
}

// Part2 counts the steps until every node ending in A simultaneously sits
// on a node ending in Z. Each start reaches its exit on a fixed cycle, so
// the answer is the LCM of the first arrivals.
func Part2(in *Input) (int, error) {
	var starts []string
	for name := range in.Network {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, errors.New("network has no start nodes")
	}
	sort.Strings(starts)

	steps := make([]int, len(starts))
	for i, s := range starts {
		n, err := in.stepsUntil(s, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, fmt.Errorf("from %s: %w", s, err)
		}
		steps[i] = n
	}
	return mathx.LCM(steps...), nil
}

func (in *Input) stepsUntil(start string, done func(string) bool) (int, error) {
	type state struct {
		node string
		idx  int
	}
	seen := make(map[state]struct{})

	cur := start
	for steps := 0; ; steps++ {
		if done(cur) && steps > 0 {
			return steps, nil
		}
		idx := steps % len(in.Directions)
		st := state{cur, idx}
		if _, ok := seen[st]; ok {
			return 0, ErrNoExit
		}
		seen[st] = struct{}{}

		n := in.Network[cur]
		if in.Directions[idx] == 'L' {
			cur = n.Left
		} else {
			cur = n.Right
		}
	}
}
