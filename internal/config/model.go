package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of every loaded puzzle manifest,
// keyed by puzzle name (e.g. "day01").
type Model struct {
	Puzzles map[string]*Puzzle
}

// Puzzle is the format-agnostic representation of a `puzzle` block.
type Puzzle struct {
	Name   string
	Title  string
	URL    string
	Source string // manifest file the puzzle was declared in
	Runs   []*Run
}

// Run is one input file evaluated for a set of parts.
type Run struct {
	Name     string
	File     string // resolved against the manifest's directory
	Parts    []int
	Want     map[int]cty.Value // expected answers, cty.Number
	Optional bool
	Options  hcl.Body // nil when the run has no options block
}

// Expected returns the expected answer for part, if the manifest pins one.
func (r *Run) Expected(part int) (cty.Value, bool) {
	v, ok := r.Want[part]
	if !ok || v.IsNull() {
		return cty.NilVal, false
	}
	return v, true
}
